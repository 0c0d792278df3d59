package server

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// listResponse is the wire envelope for GET /api/records.
type listResponse struct {
	Data       []recordPayload   `json:"data"`
	Pagination paginationPayload `json:"pagination"`
}

type recordPayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Label string `json:"label,omitempty"`
}

type paginationPayload struct {
	Total       *int `json:"total,omitempty"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	Limit       int  `json:"limit"`
}

// handleListRecords serves one window of the catalog. Pages beyond the end
// return an empty data array with the pagination block intact.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page parameter")
		return
	}
	if page < 1 {
		page = 1
	}

	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.store.CountRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count records")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	offset := (page - 1) * limit
	records, err := s.store.ListRecords(ctx, offset, limit)
	if err != nil {
		s.log.Error().Err(err).Int("offset", offset).Int("limit", limit).Msg("list records")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	data := make([]recordPayload, 0, len(records))
	for _, rec := range records {
		data = append(data, recordPayload{ID: rec.ID, Title: rec.Title, Label: rec.Label})
	}

	resp := listResponse{
		Data: data,
		Pagination: paginationPayload{
			CurrentPage: page,
			TotalPages:  (total + limit - 1) / limit,
			Limit:       limit,
		},
	}
	if !s.opts.OmitTotal {
		resp.Pagination.Total = &total
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// queryInt reads an integer query parameter, falling back when absent.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

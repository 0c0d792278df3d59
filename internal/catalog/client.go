// Package catalog provides the HTTP client for the remote record catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"recsel/internal/domain"
	"recsel/internal/logging"
)

// Prometheus metrics for catalog client operations.
var (
	catalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recsel_catalog_requests_total",
		Help: "Total catalog requests by endpoint and status",
	}, []string{"endpoint", "status"})

	catalogRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recsel_catalog_request_duration_seconds",
		Help:    "Catalog request duration in seconds by endpoint",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	catalogErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recsel_catalog_errors_total",
		Help: "Total catalog errors by class",
	}, []string{"class"})
)

// DefaultTotal is assumed when a response carries no record count.
const DefaultTotal = 100

const recordsEndpoint = "/api/records"

// Client fetches pages from the record catalog. It holds no cache: every
// call issues a fresh request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the catalog, e.g. http://127.0.0.1:8390
	BaseURL string

	// Timeout for a single request
	Timeout time.Duration

	// UserAgent header
	UserAgent string
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Timeout:   10 * time.Second,
		UserAgent: "recsel/1.0",
	}
}

// NewClient creates a catalog client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid catalog base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig(cfg.BaseURL).Timeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		config:     cfg,
		logger:     logging.NewLogger("catalog"),
	}, nil
}

// pageEnvelope mirrors the catalog's JSON response.
type pageEnvelope struct {
	Data       []recordPayload    `json:"data"`
	Pagination *paginationPayload `json:"pagination"`
}

type recordPayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Label string `json:"label"`
}

// paginationPayload tolerates partial responses: Total is a pointer so a
// missing count can be told apart from zero.
type paginationPayload struct {
	Total       *int `json:"total"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	Limit       int  `json:"limit"`
}

// FetchPage requests one page of records. pageNumber is 1-based and
// pageSize must be positive. The total page count is recomputed from the
// reported record count and the requested page size on every call.
func (c *Client) FetchPage(ctx context.Context, pageNumber, pageSize int) (*domain.Page, error) {
	if pageNumber < 1 {
		return nil, &Error{Class: ErrorClassClient, Message: fmt.Sprintf("page number must be >= 1, got %d", pageNumber)}
	}
	if pageSize < 1 {
		return nil, &Error{Class: ErrorClassClient, Message: fmt.Sprintf("page size must be positive, got %d", pageSize)}
	}

	startTime := time.Now()
	defer func() {
		catalogRequestDuration.WithLabelValues(recordsEndpoint).Observe(time.Since(startTime).Seconds())
	}()

	query := url.Values{}
	query.Set("page", strconv.Itoa(pageNumber))
	query.Set("limit", strconv.Itoa(pageSize))
	requestURL := c.baseURL + recordsEndpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Class: ErrorClassClient, Message: "build request", Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug().
		Int("page", pageNumber).
		Int("limit", pageSize).
		Str("request_id", requestID).
		Msg("fetching page")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		catalogErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		catalogRequestsTotal.WithLabelValues(recordsEndpoint, "network_error").Inc()
		c.logger.Error().Err(err).Int("page", pageNumber).Msg("catalog request failed")
		return nil, &Error{Class: ErrorClassNetwork, Message: "catalog unreachable", Err: err}
	}
	defer resp.Body.Close()

	catalogRequestsTotal.WithLabelValues(recordsEndpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		class := ErrorClassClient
		if resp.StatusCode >= 500 {
			class = ErrorClassServer
		}
		catalogErrorsTotal.WithLabelValues(string(class)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().
			Int("status_code", resp.StatusCode).
			Int("page", pageNumber).
			Str("error_class", string(class)).
			Msg("catalog returned error status")
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Class:      class,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var env pageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		catalogErrorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Class:      ErrorClassDecode,
			Message:    "undecodable response body",
			Err:        err,
		}
	}

	return c.buildPage(pageNumber, pageSize, &env), nil
}

// buildPage assembles a domain page from the wire envelope, substituting
// defaults for absent fields.
func (c *Client) buildPage(pageNumber, pageSize int, env *pageEnvelope) *domain.Page {
	total := DefaultTotal
	if env.Pagination != nil && env.Pagination.Total != nil {
		total = *env.Pagination.Total
	}
	if total < 0 {
		total = 0
	}

	items := make([]domain.Record, 0, len(env.Data))
	for _, r := range env.Data {
		items = append(items, domain.Record{ID: r.ID, Title: r.Title, Label: r.Label})
	}

	totalPages := (total + pageSize - 1) / pageSize

	if env.Pagination != nil && env.Pagination.TotalPages != 0 && env.Pagination.TotalPages != totalPages {
		// The reported page count is informational only
		c.logger.Debug().
			Int("reported", env.Pagination.TotalPages).
			Int("computed", totalPages).
			Msg("page count mismatch, using computed value")
	}

	c.logger.Debug().
		Int("page", pageNumber).
		Int("count", len(items)).
		Int("total", total).
		Int("total_pages", totalPages).
		Msg("page fetched")

	return &domain.Page{
		Items:        items,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: total,
		TotalPages:   totalPages,
	}
}

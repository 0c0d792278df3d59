// Package testutil provides testing utilities for the record catalog.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockCatalog is a configurable mock catalog server for testing. By default
// it serves TotalRecords generated records through the standard envelope.
type MockCatalog struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// TotalRecords drives the generated data set (record ids 1..N)
	TotalRecords int

	// OmitTotal drops the total field from the pagination block
	OmitTotal bool

	// OmitData drops the data field entirely
	OmitData bool

	// FailuresLeft makes the next N record requests return 500
	FailuresLeft int

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
}

// NewMockCatalog creates a mock catalog serving totalRecords records.
func NewMockCatalog(totalRecords int) *MockCatalog {
	mock := &MockCatalog{
		handlers:     make(map[string]func(w http.ResponseWriter, r *http.Request)),
		TotalRecords: totalRecords,
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockCatalog) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockCatalog) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockCatalog) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// FailNext makes the following n record requests return 500.
func (m *MockCatalog) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailuresLeft = n
}

// GetRequestCount returns the number of requests received.
func (m *MockCatalog) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLastHeader returns the named header of the most recent request.
func (m *MockCatalog) GetLastHeader(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LastRequestHeader == nil {
		return ""
	}
	return m.LastRequestHeader.Get(name)
}

// defaultHandler serves /api/records from the generated data set.
func (m *MockCatalog) defaultHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/records" {
		http.NotFound(w, r)
		return
	}

	m.mu.Lock()
	if m.FailuresLeft > 0 {
		m.FailuresLeft--
		m.mu.Unlock()
		http.Error(w, "catalog exploded", http.StatusInternalServerError)
		return
	}
	total := m.TotalRecords
	omitTotal := m.OmitTotal
	omitData := m.OmitData
	m.mu.Unlock()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]map[string]any, 0, limit)
	for id := start + 1; id <= end; id++ {
		data = append(data, map[string]any{
			"id":    id,
			"title": fmt.Sprintf("Record %04d", id),
			"label": fmt.Sprintf("batch-%d", (id-1)/25+1),
		})
	}

	totalPages := (total + limit - 1) / limit
	pagination := map[string]any{
		"current_page": page,
		"total_pages":  totalPages,
		"limit":        limit,
	}
	if !omitTotal {
		pagination["total"] = total
	}

	body := map[string]any{"pagination": pagination}
	if !omitData {
		body["data"] = data
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

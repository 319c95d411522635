// Package testutil provides mock-server helpers for the traceix-sdk-go tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// NewMockServer creates an httptest.Server routing the given paths to their
// handlers. Unlisted paths return 404.
func NewMockServer(handlers map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	return httptest.NewServer(mux)
}

// JSONHandler returns an http.HandlerFunc that responds with the given status
// code and JSON body.
func JSONHandler(statusCode int, body interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(body) //nolint:errcheck
	}
}

// RawHandler returns an http.HandlerFunc that responds with a fixed raw body,
// for exercising non-JSON responses.
func RawHandler(statusCode int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(statusCode)
		io.WriteString(w, body) //nolint:errcheck
	}
}

// UploadHandler returns an http.HandlerFunc that reads the multipart "file"
// field and lets checkFunc choose the response from the uploaded content.
func UploadHandler(checkFunc func(data []byte, filename string) (int, interface{})) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "provide a single file"}) //nolint:errcheck
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "failed to read file"}) //nolint:errcheck
			return
		}

		status, body := checkFunc(data, header.Filename)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body) //nolint:errcheck
	}
}

// RecordedRequest captures one request seen by a recording server.
type RecordedRequest struct {
	Path        string
	ContentType string
	Header      http.Header
	Body        []byte
}

// Recorder collects requests in arrival order for assertions on paths,
// headers and bodies.
type Recorder struct {
	mu   sync.Mutex
	reqs []RecordedRequest
}

// Len returns how many requests were recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

// Paths returns the recorded request paths in order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, len(r.reqs))
	for i, req := range r.reqs {
		paths[i] = req.Path
	}
	return paths
}

// Request returns the i-th recorded request.
func (r *Recorder) Request(i int) RecordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reqs[i]
}

// NewRecordingServer starts a server that answers every request with the
// given JSON body and records each request it sees.
func NewRecordingServer(statusCode int, body interface{}) (*httptest.Server, *Recorder) {
	rec := &Recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, RecordedRequest{
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Header:      r.Header.Clone(),
			Body:        data,
		})
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(body) //nolint:errcheck
	}))
	return srv, rec
}

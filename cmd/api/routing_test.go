package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/author"
	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
)

type stubRegistrar struct {
	routes []string
}

func (s stubRegistrar) Register(mux *http.ServeMux) {
	for _, pattern := range s.routes {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	}
}

func testRouter(ready error) *http.ServeMux {
	return newRouter(routerDeps{
		books:   stubRegistrar{routes: []string{"GET /book/{$}"}},
		authors: stubRegistrar{routes: []string{"GET /author/{$}"}},
		ready:   func(context.Context) error { return ready },
		metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
	})
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		ready  error
		want   int
	}{
		{"healthz", http.MethodGet, "/healthz", nil, http.StatusOK},
		{"readyz ok", http.MethodGet, "/readyz", nil, http.StatusOK},
		{"readyz db down", http.MethodGet, "/readyz", errors.New("down"), http.StatusServiceUnavailable},
		{"metrics", http.MethodGet, "/metrics", nil, http.StatusOK},
		{"books mounted", http.MethodGet, "/book/", nil, http.StatusTeapot},
		{"authors mounted", http.MethodGet, "/author/", nil, http.StatusTeapot},
		{"wrong method", http.MethodPost, "/healthz", nil, http.StatusMethodNotAllowed},
		{"unknown", http.MethodGet, "/books", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			testRouter(tt.ready).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// The real handlers must register without pattern conflicts on one mux.
func TestRouter_RealHandlersRegister(t *testing.T) {
	assert.NotPanics(t, func() {
		newRouter(routerDeps{
			books:   book.NewHTTPHandler(book.NewService(nil, nil), nil),
			authors: author.NewHTTPHandler(author.NewService(nil, nil), nil),
			ready:   func(context.Context) error { return nil },
			metrics: http.NotFoundHandler(),
		})
	})
}

package author

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bookcatalog/internal/httpx"

	"go.uber.org/zap"
)

var validate = httpx.NewValidator()

type createAuthorRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{service: service, logger: logger.Named("author.http")}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /author/{$}", h.List)
	mux.HandleFunc("POST /author/{$}", h.Create)
	mux.HandleFunc("GET /author/{id}", h.Get)
}

// List handles GET /author/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list authors", err)
		return
	}
	httpx.JSONSuccess(w, r, authors, map[string]interface{}{"total": len(authors)})
}

// Get handles GET /author/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid author ID", nil)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
			return
		}
		h.internalError(w, r, "get author", err)
		return
	}
	httpx.JSONSuccess(w, r, a, nil)
}

// Create handles POST /author/
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAuthorRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid author", httpx.ValidationDetails(err))
		return
	}
	birthDate, _ := time.Parse(time.DateOnly, req.BirthDate)

	a, err := h.service.Create(r.Context(), CreateInput{Name: req.Name, BirthDate: birthDate})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		h.internalError(w, r, "create author", err)
		return
	}
	httpx.JSONSuccessCreated(w, r, a)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(op+" failed",
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

package book

import (
	"errors"
	"net/http"
	"time"

	"bookcatalog/internal/httpx"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := httpx.NewValidator()
	mustRegisterValidation(v, "genre", func(fl validator.FieldLevel) bool {
		return Genre(fl.Field().String()).Valid()
	})
	mustRegisterValidation(v, "matchtype", func(fl validator.FieldLevel) bool {
		_, err := ParseMatchType(fl.Field().String())
		return err == nil
	})
	mustRegisterValidation(v, "searchfield", func(fl validator.FieldLevel) bool {
		_, err := ParseSearchField(fl.Field().String())
		return err == nil
	})
	return v
}

// mustRegisterValidation panics on a bad registration; it only runs at init.
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

type searchRequest struct {
	SearchString string `query:"searchString"`
	MatchType    string `query:"matchType" validate:"matchtype"`
	SearchField  string `query:"searchField" validate:"searchfield"`
}

type favoritesRequest struct {
	Genre string `query:"genre" validate:"omitempty,genre"`
	Q     string `query:"q" validate:"max=200"`
	Sort  string `query:"sort" validate:"omitempty,oneof=title author publishedAt"`
	Dir   string `query:"dir" validate:"omitempty,oneof=asc desc"`
}

type createBookRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Synopsis    string `json:"synopsis" validate:"max=10000"`
	Genre       string `json:"genre" validate:"required,genre"`
	PublishedAt string `json:"published_at" validate:"required,datetime=2006-01-02"`
	AuthorID    int64  `json:"author_id" validate:"required,gt=0"`
	IsFavorite  bool   `json:"is_favorite"`
}

type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{service: service, logger: logger.Named("book.http")}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /book/{$}", h.List)
	mux.HandleFunc("POST /book/{$}", h.Create)
	mux.HandleFunc("GET /book/search", h.Search)
	mux.HandleFunc("GET /book/favorites", h.Favorites)
	mux.HandleFunc("GET /book/genres", h.Genres)
	mux.HandleFunc("GET /book/{id}", h.Get)
	mux.HandleFunc("PUT /book/{id}/favorite", h.AddFavorite)
	mux.HandleFunc("DELETE /book/{id}/favorite", h.RemoveFavorite)
}

// List handles GET /book/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list books", err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]interface{}{"total": len(books)})
}

// Search handles GET /book/search?searchString&matchType&searchField
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := searchRequest{
		SearchString: query.Get("searchString"),
		MatchType:    query.Get("matchType"),
		SearchField:  query.Get("searchField"),
	}
	if req.MatchType == "" {
		req.MatchType = string(MatchContains)
	}
	if req.SearchField == "" {
		req.SearchField = string(FieldTitle)
	}

	if req.SearchString == "" {
		httpx.JSONSuccess(w, r, []Book{}, map[string]interface{}{"total": 0})
		return
	}

	if err := validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters", httpx.ValidationDetails(err))
		return
	}

	books, err := h.service.Search(r.Context(), req.SearchString, MatchType(req.MatchType), SearchField(req.SearchField))
	if err != nil {
		h.internalError(w, r, "search books", err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]interface{}{"total": len(books)})
}

// Favorites handles GET /book/favorites?genre&q&sort&dir
func (h *HTTPHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := favoritesRequest{
		Genre: query.Get("genre"),
		Q:     query.Get("q"),
		Sort:  query.Get("sort"),
		Dir:   query.Get("dir"),
	}
	if err := validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid library parameters", httpx.ValidationDetails(err))
		return
	}

	books, err := h.service.Favorites(r.Context(), LibraryQuery{
		Genre: Genre(req.Genre),
		Term:  req.Q,
		Sort:  SortKey(req.Sort),
		Desc:  req.Dir == "desc",
	})
	if err != nil {
		h.internalError(w, r, "list favorites", err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]interface{}{"total": len(books)})
}

// Genres handles GET /book/genres
func (h *HTTPHandler) Genres(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.service.Genres(), nil)
}

// Get handles GET /book/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book ID", nil)
		return
	}

	book, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		h.internalError(w, r, "get book", err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// Create handles POST /book/
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", httpx.ValidationDetails(err))
		return
	}
	publishedAt, _ := time.Parse(time.DateOnly, req.PublishedAt)

	book, err := h.service.Create(r.Context(), CreateInput{
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		Genre:       Genre(req.Genre),
		PublishedAt: publishedAt,
		AuthorID:    req.AuthorID,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAuthorNotFound):
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "AUTHOR_NOT_FOUND", "Author does not exist", nil)
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidGenre):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			h.internalError(w, r, "create book", err)
		}
		return
	}
	httpx.JSONSuccessCreated(w, r, book)
}

// AddFavorite handles PUT /book/{id}/favorite
func (h *HTTPHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

// RemoveFavorite handles DELETE /book/{id}/favorite
func (h *HTTPHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

func (h *HTTPHandler) setFavorite(w http.ResponseWriter, r *http.Request, favorite bool) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book ID", nil)
		return
	}

	if favorite {
		err = h.service.AddFavorite(r.Context(), id)
	} else {
		err = h.service.RemoveFavorite(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		h.internalError(w, r, "update favorite", err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"id": id, "is_favorite": favorite}, nil)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(op+" failed",
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
// @Summary List books
// @Description Search, filter by category and paginate the public catalog
// @Tags books
// @Produce json
// @Param q query string false "Search query"
// @Param categoryId query int false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} map[string]interface{}
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Q: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "categoryId must be a number", err)
			return
		}
		q.CategoryID = categoryID
	}

	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if q.Page < 1 {
		q.Page = 1
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 12
	}

	books, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	httpx.JSON(w, http.StatusOK, map[string]any{
		"data": books,
		"pagination": map[string]any{
			"page":       q.Page,
			"totalPages": totalPages,
			"totalBooks": total,
		},
	})
}

type CreateBookReq struct {
	Title       string  `json:"title" validate:"required"`
	Author      *string `json:"author"`
	BookNumber  *string `json:"bookNumber"`
	PDFURL      *string `json:"pdfUrl" validate:"omitempty,url"`
	PublicID    *string `json:"publicId"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateBookReq true "New book"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if msgs := httpx.ValidateStruct(req); len(msgs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, strings.Join(msgs, "; "), nil)
		return
	}
	if (req.PDFURL == nil) != (req.PublicID == nil) {
		httpx.JSONError(w, http.StatusBadRequest, "pdfUrl and publicId must be supplied together", nil)
		return
	}

	in := CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		BookNumber:  req.BookNumber,
		CategoryIDs: req.CategoryIDs,
	}
	if req.PDFURL != nil {
		in.PDF = &PDFAttachment{URL: *req.PDFURL, PublicID: *req.PublicID}
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			httpx.JSONError(w, http.StatusBadRequest, "Book title is required", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Book record created", "id": id})
}

type UpdateBookReq struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	BookNumber  *string `json:"bookNumber"`
	PDFURL      *string `json:"pdfUrl"`
	PublicID    *string `json:"publicId"`
	OldPublicID string  `json:"oldPublicId"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// Update handles PUT /books?id=
// @Summary Update a book
// @Description Partial update: absent fields keep their stored values
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id query int true "Book ID"
// @Param request body UpdateBookReq true "Changed fields"
// @Success 200 {object} httpx.MessageResponse
// @Router /books [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromQuery(w, r)
	if !ok {
		return
	}

	var req UpdateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.PDFURL != nil && req.PublicID == nil {
		httpx.JSONError(w, http.StatusBadRequest, "pdfUrl and publicId must be supplied together", nil)
		return
	}

	err := h.service.Update(r.Context(), id, UpdateInput{
		Title:       req.Title,
		Author:      req.Author,
		BookNumber:  req.BookNumber,
		PDFURL:      req.PDFURL,
		PublicID:    req.PublicID,
		OldPublicID: req.OldPublicID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	httpx.JSONMessage(w, http.StatusOK, "Book updated")
}

// Delete handles DELETE /books?id=
// @Summary Delete a book
// @Description Releases the attached asset-store object, then removes the row
// @Tags books
// @Produce json
// @Security Bearer
// @Param id query int true "Book ID"
// @Success 200 {object} httpx.MessageResponse
// @Router /books [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	httpx.JSONMessage(w, http.StatusOK, "Book deleted successfully")
}

func bookIDFromQuery(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Book ID required", nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Book ID must be a number", err)
		return 0, false
	}
	return id, true
}

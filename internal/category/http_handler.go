package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"data": categories})
}

type categoryReq struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Create handles POST /categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.MessageResponse
// @Router /categories [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := h.service.Create(r.Context(), req.Name); err != nil {
		writeCategoryError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusCreated, "Category created")
}

// Rename handles PUT /categories
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.MessageResponse
// @Router /categories [put]
func (h *HTTPHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == 0 || req.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "ID and name are required for renaming.", nil)
		return
	}

	if err := h.service.Rename(r.Context(), req.ID, req.Name); err != nil {
		writeCategoryError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Category renamed successfully")
}

// Delete handles DELETE /categories
// @Summary Delete a category
// @Description Removes the category and its book associations; books stay
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.MessageResponse
// @Router /categories [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Category ID is required for deletion.", nil)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Category deleted successfully")
}

func writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNameRequired):
		httpx.JSONError(w, http.StatusBadRequest, "Category name is required.", nil)
	case errors.Is(err, ErrDuplicateName):
		httpx.JSONError(w, http.StatusBadRequest, "Category name already exists.", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
	}
}

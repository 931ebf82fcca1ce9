package video

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

// List handles GET /books?type=videos
// @Summary List e-content videos
// @Tags videos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"data": videos})
}

type videoReq struct {
	Title        string `json:"title" validate:"required"`
	YouTubeURL   string `json:"youtube_url" validate:"required,youtube"`
	AcademicYear string `json:"academic_year" validate:"required"`
}

// Create handles POST /books?type=videos
// @Summary Add a video
// @Tags videos
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.MessageResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeVideoReq(w, r)
	if !ok {
		return
	}

	_, err := h.service.Create(r.Context(), Video{
		Title:        req.Title,
		YouTubeURL:   req.YouTubeURL,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSONMessage(w, http.StatusCreated, "Video created")
}

// Update handles PUT /books?type=videos&id=
// @Summary Update a video
// @Tags videos
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.MessageResponse
// @Router /books [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := videoIDFromQuery(w, r)
	if !ok {
		return
	}
	req, ok := decodeVideoReq(w, r)
	if !ok {
		return
	}

	err := h.service.Update(r.Context(), Video{
		ID:           id,
		Title:        req.Title,
		YouTubeURL:   req.YouTubeURL,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Video not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Video updated")
}

// Delete handles DELETE /books?type=videos&id=
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.MessageResponse
// @Router /books [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := videoIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Video deleted successfully")
}

func decodeVideoReq(w http.ResponseWriter, r *http.Request) (videoReq, bool) {
	var req videoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", err)
		return req, false
	}
	if msgs := httpx.ValidateStruct(req); len(msgs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, strings.Join(msgs, "; "), nil)
		return req, false
	}
	return req, true
}

func videoIDFromQuery(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Video ID required", nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Video ID must be a number", err)
		return 0, false
	}
	return id, true
}

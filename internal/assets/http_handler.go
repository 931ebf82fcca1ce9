package assets

import (
	"errors"
	"net/http"

	"libraryapi/internal/httpx"
)

// PDF uploads above this size are rejected outright.
const maxUploadBytes = 32 << 20

type HTTPHandler struct {
	client *Client
}

func NewHTTPHandler(client *Client) *HTTPHandler {
	return &HTTPHandler{client: client}
}

// UploadPDF handles POST /assets/pdf
// @Summary Upload a PDF to the asset store
// @Description Stores the file as a raw asset and returns its URL and public ID
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "PDF file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Router /assets/pdf [post]
func (h *HTTPHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Failed to parse form data.", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "PDF file is required.", err)
		return
	}
	defer file.Close()

	pdfURL, publicID, err := h.client.Upload(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			httpx.JSONError(w, http.StatusInternalServerError, "Server configuration error.", err)
			return
		}
		httpx.JSONError(w, http.StatusBadGateway, "Asset upload failed.", err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{
		"pdfUrl":   pdfURL,
		"publicId": publicID,
	})
}

package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"libraryapi/internal/httpx"
)

// Uploaded workbooks are kept small; one sheet of a school library catalog
// fits comfortably.
const maxWorkbookBytes = 16 << 20

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// BulkImport handles POST /books/bulk-import
// @Summary Bulk import book records
// @Description Upsert a JSON array of records in one transaction, skipping invalid rows
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/bulk-import [post]
func (h *HTTPHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	var records []Record
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Request body must be an array of books.", err)
		return
	}

	report, err := h.service.Import(r.Context(), records)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Database transaction failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("Processed %d records with %d successful imports", report.Total, report.Processed),
		"processed":   report.Processed,
		"skipped":     report.Skipped,
		"total":       report.Total,
		"skippedRows": report.SkippedRows,
	})
}

// ImportExcel handles POST /import
// @Summary Import books from an Excel workbook
// @Description Parse every sheet (columns Book Name, Barcode, Author) and bulk import the rows
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param excelFile formData file true "xlsx workbook"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /import [post]
func (h *HTTPHandler) ImportExcel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxWorkbookBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Failed to parse form data.", err)
		return
	}

	file, _, err := r.FormFile("excelFile")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Excel file is required.", err)
		return
	}
	defer file.Close()

	records, sheets, err := ParseWorkbook(file)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Could not read Excel file.", err)
		return
	}

	report, err := h.service.Import(r.Context(), records)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Database transaction failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message":   "Import process finished.",
		"processed": report.Processed,
		"skipped":   report.Skipped,
		"total":     report.Total,
		"sheets":    sheets,
	})
}

package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoscan/internal/export"
	"invoscan/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExtractRequest is the request body for extraction endpoints.
type ExtractRequest struct {
	// Text is the raw invoice text produced by the upstream OCR/PDF step.
	Text string `json:"text" binding:"required"`
}

// ExtractHandler serves the extraction endpoints.
type ExtractHandler struct {
	svc *service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(svc *service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{svc: svc}
}

// Extract handles POST /api/v1/extract
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "text field is required")
		return
	}

	result := h.svc.Extract(req.Text)
	RespondOK(c, result)
}

// Export handles POST /api/v1/extract/export — runs extraction and returns
// the review workbook as an XLSX attachment.
func (h *ExtractHandler) Export(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "text field is required")
		return
	}

	result := h.svc.Extract(req.Text)
	wb, err := export.Workbook(result.Metadata, result.Items)
	if err != nil {
		log.Printf("handler.ExtractHandler: building workbook: %v", err)
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		log.Printf("handler.ExtractHandler: serializing workbook: %v", err)
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "could not serialize workbook")
		return
	}

	name := ""
	if result.Metadata.InvoiceNumber != nil {
		name = *result.Metadata.InvoiceNumber
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BuildFilename(name)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

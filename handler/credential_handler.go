package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mxidsoft/ine-ocr-service/client"
	"github.com/mxidsoft/ine-ocr-service/dto"
	"github.com/mxidsoft/ine-ocr-service/service"
)

// CredentialHandler handles credential extraction requests
type CredentialHandler struct {
	credentialService *service.CredentialService
}

func NewCredentialHandler(credentialService *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		credentialService: credentialService,
	}
}

// ExtractFront handles POST /ine/extract: multipart image in, field record
// out. ?debug=1 attaches the normalized OCR lines and the detected layout.
func (h *CredentialHandler) ExtractFront(c *gin.Context) {
	log.Println("Received credential extraction request")

	// The original clients upload under "imagen"; accept "file" as well.
	file, err := c.FormFile("imagen")
	if err != nil {
		file, err = c.FormFile("file")
	}
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrImageRequired.Error(), nil)
		return
	}

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data", err)
		return
	}
	if len(fileData) == 0 {
		h.sendError(c, http.StatusBadRequest, dto.ErrImageRequired.Error(), nil)
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(file.Filename)
	}
	if !isValidMimeType(mimeType) {
		h.sendError(c, http.StatusBadRequest, "Invalid file type. Supported: PDF, PNG, JPEG", nil)
		return
	}

	debug := isDebugFlag(c.Query("debug"))

	result, err := h.credentialService.ExtractFront(context.Background(), fileData, mimeType, debug)
	if err != nil {
		if errors.Is(err, client.ErrOCRTimeout) {
			h.sendError(c, http.StatusRequestTimeout, "Image is unclear (OCR timed out)", nil)
			return
		}
		h.sendError(c, http.StatusBadRequest, "Failed to process credential image", err)
		return
	}

	log.Println("Credential extraction completed successfully")
	c.JSON(http.StatusOK, result)
}

// SplitName handles POST /ine/split-name: an extracted field map in, the
// same map augmented with apellido_paterno/apellido_materno/nombres out.
func (h *CredentialHandler) SplitName(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.sendError(c, http.StatusBadRequest, "Request body must be a JSON object of string fields", err)
		return
	}

	result, err := h.credentialService.SplitName(fields)
	if err != nil {
		if errors.Is(err, dto.ErrMissingField) {
			h.sendError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to split name", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sendError sends a structured error response
func (h *CredentialHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CREDENTIAL_EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

func isDebugFlag(v string) bool {
	switch strings.TrimSpace(v) {
	case "1", "true", "True", "yes", "YES":
		return true
	}
	return false
}

// isValidMimeType checks if the MIME type is supported
func isValidMimeType(mimeType string) bool {
	validTypes := []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/jpg",
	}

	mimeType = strings.ToLower(mimeType)
	for _, valid := range validTypes {
		if strings.Contains(mimeType, valid) {
			return true
		}
	}
	return false
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".pdf") {
		return "application/pdf"
	} else if strings.HasSuffix(lower, ".png") {
		return "image/png"
	} else if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return ""
}

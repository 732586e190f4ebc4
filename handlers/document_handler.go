package handlers

import (
	"errors"
	"net/http"

	"landlordheaven-backend/generator"
	"landlordheaven-backend/models"
	"landlordheaven-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for document generation
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GenerateDocumentRequest represents the request body for generating a document
type GenerateDocumentRequest struct {
	CaseID       string `json:"case_id" binding:"required"`
	DocumentType string `json:"document_type" binding:"required"`
	IsPreview    *bool  `json:"is_preview"`
}

// GenerateDocument handles POST /api/documents/generate.
//
// The ordering is part of the contract: body shape first, then auth (only for
// non-preview requests, and before any case or fact access), then the
// service pipeline.
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	// 1. Body shape and enum
	var req GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "INVALID_REQUEST",
		})
		return
	}

	caseID, err := uuid.Parse(req.CaseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid case_id format",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	docType := models.DocumentType(req.DocumentType)
	if _, ok := generator.Lookup(docType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported document_type: " + req.DocumentType,
			"code":  "INVALID_REQUEST",
		})
		return
	}

	isPreview := true
	if req.IsPreview != nil {
		isPreview = *req.IsPreview
	}

	// 2. Final documents require a session. This happens before the service
	// touches the case.
	user := CurrentUser(c)
	if !isPreview && user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required for final document generation",
			"code":  "UNAUTHORIZED",
		})
		return
	}

	result, err := h.documentService.GenerateDocument(c.Request.Context(), service.GenerateDocumentRequest{
		CaseID:       caseID,
		DocumentType: docType,
		IsPreview:    isPreview,
		User:         user,
	})
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	resp := gin.H{
		"success":  true,
		"document": result.Document,
		"message":  "Document generated successfully",
	}
	if len(result.Warnings) > 0 {
		resp["warnings"] = result.Warnings
	}
	c.JSON(http.StatusCreated, resp)
}

// writeGenerateError maps service errors onto the generate endpoint's status
// code and error code contract
func (h *DocumentHandler) writeGenerateError(c *gin.Context, err error) {
	var complianceErr *service.ComplianceError
	if errors.As(err, &complianceErr) {
		// Both keys carry the same list, for client backward compatibility
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         complianceErr.Error(),
			"code":          complianceErr.Code,
			"missing":       complianceErr.Missing,
			"missingFields": complianceErr.Missing,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrCaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Case not found",
			"code":  "CASE_NOT_FOUND",
		})
	case errors.Is(err, service.ErrJurisdictionMismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "INVALID_REQUEST",
		})
	case errors.Is(err, service.ErrUnsupportedDocumentType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "INVALID_REQUEST",
		})
	case errors.Is(err, service.ErrGenerationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  "DOCUMENT_GENERATION_FAILED",
		})
	case errors.Is(err, service.ErrUploadFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  "UPLOAD_FAILED",
		})
	case errors.Is(err, service.ErrSaveFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  "DB_SAVE_FAILED",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"code":  "INTERNAL_ERROR",
		})
	}
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// ListCaseDocuments handles GET /api/cases/:id/documents
func (h *DocumentHandler) ListCaseDocuments(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid case ID format",
			},
		})
		return
	}

	docs, err := h.documentService.ListCaseDocuments(c.Request.Context(), caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    docs,
	})
}

// CheckCompliance handles GET /api/cases/:id/compliance?document_type=
func (h *DocumentHandler) CheckCompliance(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid case ID format",
			},
		})
		return
	}

	docType := models.DocumentType(c.Query("document_type"))
	if _, ok := generator.Lookup(docType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Unknown or missing document_type",
			},
		})
		return
	}

	report, err := h.documentService.CheckCompliance(c.Request.Context(), caseID, docType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CASE_NOT_FOUND",
					"message": "Case not found",
				},
			})
		case errors.Is(err, service.ErrJurisdictionMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": err.Error(),
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

package documents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/services/documents"
)

// ListDocuments retrieves the caller's documents
// @Summary      List documents
// @Description  Retrieve the authenticated user's uploaded documents, newest first
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} object{documents=[]models.Document} "List of documents"
// @Router       /api/v1/documents [get]
func ListDocuments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		documentList, err := deps.DocumentService.ListDocuments(c.Request.Context(), userID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"documents": documentList})
	}
}

// GetDocument retrieves a single document
// @Summary      Get document
// @Description  Retrieve a document record by ID
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} models.Document "Document"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id} [get]
func GetDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		document, err := deps.DocumentService.GetDocument(c.Request.Context(), documentID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, document)
	}
}

// CreateDocument registers an uploaded document
// @Summary      Create document record
// @Description  Register an uploaded file as an annotatable document
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        document body types.CreateDocumentRequest true "Document data"
// @Success      201 {object} models.Document "Created document"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/documents [post]
func CreateDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.CreateDocumentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		document, err := deps.DocumentService.CreateDocument(c.Request.Context(), userID, documents.DocumentDraft{
			Title:       req.Title,
			FileKey:     req.FileKey,
			ContentType: req.ContentType,
			SizeBytes:   req.SizeBytes,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, document)
	}
}

// DeleteDocument removes a document and everything annotated on it
// @Summary      Delete document
// @Description  Delete a document together with its annotations and replies. Only the owner may delete.
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} types.DeleteResponse "Document deleted"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id} [delete]
func DeleteDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		if err := deps.DocumentService.DeleteDocument(c.Request.Context(), documentID, userID); err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.DeleteResponse{Success: true})
	}
}

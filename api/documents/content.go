package documents

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// UploadContent returns a handler that stores document bytes under the
// record's file key
// @Summary Upload document content
// @Description Store the document's binary content in object storage; only the owner may upload
// @Tags documents
// @Accept octet-stream
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} types.BaseResponse "Upload confirmation"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 403 {object} types.ErrorResponse "Not the owner"
// @Failure 404 {object} types.ErrorResponse "Document not found"
// @Failure 503 {object} types.ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /api/v1/documents/{id}/content [put]
func UploadContent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		if deps.ObjectStore == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Object storage is not configured"})
			return
		}

		document, err := deps.DocumentService.GetDocument(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		if document.UserID != userID {
			c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "Only the owner may upload document content"})
			return
		}

		content, err := io.ReadAll(c.Request.Body)
		if err != nil {
			types.SendBadRequest(c, "Failed to read request body")
			return
		}
		if len(content) == 0 {
			types.SendBadRequest(c, "Request body is empty")
			return
		}

		contentType := c.ContentType()
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := deps.ObjectStore.Put(c.Request.Context(), document.FileKey, contentType, content); err != nil {
			types.SendInternalError(c, "Failed to store document content")
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Content uploaded"})
	}
}

// DownloadContent returns a handler that serves document bytes from
// object storage
// @Summary Download document content
// @Description Fetch the document's binary content from object storage
// @Tags documents
// @Produce octet-stream
// @Param id path int true "Document ID"
// @Success 200 {file} binary "Document content"
// @Failure 404 {object} types.ErrorResponse "Document not found"
// @Failure 503 {object} types.ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /api/v1/documents/{id}/content [get]
func DownloadContent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if deps.ObjectStore == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Object storage is not configured"})
			return
		}

		document, err := deps.DocumentService.GetDocument(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		content, err := deps.ObjectStore.Get(c.Request.Context(), document.FileKey)
		if err != nil {
			types.SendNotFound(c, "Document content not found")
			return
		}

		contentType := document.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, content)
	}
}

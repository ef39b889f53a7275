package photos

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// UploadContent returns a handler that stores image bytes under the
// photo's object key
// @Summary Upload photo content
// @Description Store the photo's image bytes in object storage; only the uploader may upload
// @Tags photos
// @Accept octet-stream
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} types.BaseResponse "Upload confirmation"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 403 {object} types.ErrorResponse "Not the uploader"
// @Failure 404 {object} types.ErrorResponse "Photo not found"
// @Failure 503 {object} types.ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /api/v1/photos/{id}/content [put]
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

		photo, err := deps.PhotoService.GetPhoto(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		if photo.UserID != userID {
			c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "Only the uploader may upload photo content"})
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

		if err := deps.ObjectStore.Put(c.Request.Context(), photo.ObjectKey, contentType, content); err != nil {
			types.SendInternalError(c, "Failed to store photo content")
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Content uploaded"})
	}
}

// DownloadContent returns a handler that serves image bytes from
// object storage
// @Summary Download photo content
// @Description Fetch the photo's image bytes from object storage
// @Tags photos
// @Produce octet-stream
// @Param id path int true "Photo ID"
// @Success 200 {file} binary "Photo content"
// @Failure 404 {object} types.ErrorResponse "Photo not found"
// @Failure 503 {object} types.ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /api/v1/photos/{id}/content [get]
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

		photo, err := deps.PhotoService.GetPhoto(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		content, err := deps.ObjectStore.Get(c.Request.Context(), photo.ObjectKey)
		if err != nil {
			types.SendNotFound(c, "Photo content not found")
			return
		}

		contentType := photo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, content)
	}
}

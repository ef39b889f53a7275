package photos

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/services/photos"
)

// ListPhotos returns a handler for listing gallery photos
// @Summary List photos
// @Description Get all gallery photos, optionally filtered by component
// @Tags photos
// @Accept json
// @Produce json
// @Param component_id query int false "Only photos linked to this component"
// @Success 200 {object} map[string]interface{} "List of photos"
// @Failure 400 {object} types.ErrorResponse "Invalid component id"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/photos [get]
func ListPhotos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var componentID *uint
		if raw := c.Query("component_id"); raw != "" {
			id, ok := types.ParseUintQuery(c, "component_id")
			if !ok {
				return
			}
			componentID = &id
		}

		list, err := deps.PhotoService.ListPhotos(c.Request.Context(), componentID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"photos": list})
	}
}

// GetPhoto returns a handler for fetching a single photo record
// @Summary Get photo
// @Description Get a gallery photo by ID
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} models.Photo "Photo record"
// @Failure 400 {object} types.ErrorResponse "Invalid photo ID"
// @Failure 404 {object} types.ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /api/v1/photos/{id} [get]
func GetPhoto(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		photo, err := deps.PhotoService.GetPhoto(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, photo)
	}
}

// CreatePhoto returns a handler for adding a gallery photo record
// @Summary Add photo
// @Description Register an uploaded photo in the gallery
// @Tags photos
// @Accept json
// @Produce json
// @Param photo body types.CreatePhotoRequest true "Photo details"
// @Success 201 {object} models.Photo "Created photo"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 401 {object} types.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/photos [post]
func CreatePhoto(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.CreatePhotoRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		photo, err := deps.PhotoService.AddPhoto(c.Request.Context(), userID, photos.PhotoDraft{
			Caption:     req.Caption,
			ComponentID: req.ComponentID,
			ObjectKey:   req.ObjectKey,
			ContentType: req.ContentType,
			SizeBytes:   req.SizeBytes,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, photo)
	}
}

// DeletePhoto returns a handler for removing a gallery photo record
// @Summary Delete photo
// @Description Remove a gallery photo; only the uploader may delete
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} types.DeleteResponse "Deletion confirmation"
// @Failure 400 {object} types.ErrorResponse "Invalid photo ID"
// @Failure 403 {object} types.ErrorResponse "Not the uploader"
// @Failure 404 {object} types.ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /api/v1/photos/{id} [delete]
func DeletePhoto(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		if err := deps.PhotoService.RemovePhoto(c.Request.Context(), id, userID); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.DeleteResponse{Success: true})
	}
}

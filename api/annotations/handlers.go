package annotations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/annotations"
)

// GetAnnotations retrieves all annotations for a document
// @Summary      List annotations for document
// @Description  Retrieve a document's annotations newest first, each with its threaded replies oldest first and author profiles attached
// @Tags         annotations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} object{annotations=[]models.Annotation} "List of annotations"
// @Failure      400 {object} types.ErrorResponse "Invalid document ID"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		annotationList, err := deps.AnnotationService.ListAnnotations(c.Request.Context(), documentID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"annotations": annotationList})
	}
}

// CreateAnnotation creates a new annotation on a document
// @Summary      Create annotation on document
// @Description  Create a position-anchored annotation (highlight, comment, or drawing) on a document page
// @Tags         annotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Document ID"
// @Param        annotation body types.CreateAnnotationRequest true "Annotation data (content, position, type)"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.CreateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		draft := annotations.AnnotationDraft{
			Content: req.Content,
			Position: models.Position{
				X:      req.Position.X,
				Y:      req.Position.Y,
				Width:  req.Position.Width,
				Height: req.Position.Height,
			},
			Type:     models.AnnotationType(req.Type),
			Metadata: req.Metadata,
		}

		annotation, err := deps.AnnotationService.CreateAnnotation(c.Request.Context(), documentID, userID, draft)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, annotation)
	}
}

// CreateReply adds a threaded reply to an annotation
// @Summary      Reply to annotation
// @Description  Add a reply to an existing annotation's discussion thread
// @Tags         annotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Param        reply body types.CreateReplyRequest true "Reply content"
// @Success      201 {object} models.AnnotationReply "Created reply"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/v1/annotations/{id}/replies [post]
func CreateReply(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.CreateReplyRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		reply, err := deps.AnnotationService.CreateReply(c.Request.Context(), annotationID, userID, req.Content)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, reply)
	}
}

// DeleteAnnotation deletes an annotation and its replies
// @Summary      Delete annotation
// @Description  Delete an annotation and its entire reply thread. Only the annotation's author may delete it.
// @Tags         annotations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Success      200 {object} types.DeleteResponse "Annotation deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid annotation ID"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/v1/annotations/{id} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		if err := deps.AnnotationService.DeleteAnnotation(c.Request.Context(), annotationID, userID); err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.DeleteResponse{Success: true})
	}
}

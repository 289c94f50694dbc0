package comment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstack/clipstack-backend/internal/auth"
	httpHandler "github.com/clipstack/clipstack-backend/internal/http"
)

// Handler defines the HTTP handler for comment operations
type Handler struct {
	service  *Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new comment handler
func NewHandler(service *Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the comment API routes
func (h *Handler) RegisterRoutes(router *gin.Engine, tokens auth.TokenService) {
	// Listing is public; a token, when present, annotates viewer reactions.
	public := router.Group("")
	public.Use(auth.OptionalAuthMiddleware(tokens))
	{
		public.GET("/video/:id/comments", h.ListComments)
		public.GET("/video/:id/comments/count", h.GetCommentCount)
	}

	protected := router.Group("")
	protected.Use(auth.AuthMiddleware(tokens, h.response))
	{
		protected.POST("/video/:id/comment", h.CreateComment)
		protected.DELETE("/comment/:id", h.DeleteComment)
		protected.PUT("/comment/:id/reaction", h.SetReaction)
	}
}

// ListComments retrieves the comment tree for a video. Storage failures
// degrade to an empty list inside the service, so this endpoint never
// reports an error for the list itself.
func (h *Handler) ListComments(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_video_id", "Invalid video ID format", err)
		return
	}

	viewerID, _ := auth.UserIDFromContext(c)
	mode := ParseSortMode(c.Query("sort"))

	comments := h.service.ListComments(c.Request.Context(), videoID, viewerID, mode)
	h.response.SuccessResponse(c, comments, "Comments retrieved successfully")
}

// GetCommentCount returns the total comment count for a video, replies
// included.
func (h *Handler) GetCommentCount(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_video_id", "Invalid video ID format", err)
		return
	}

	count := h.service.GetCommentCount(c.Request.Context(), videoID)
	h.response.SuccessResponse(c, gin.H{"count": count}, "Comment count retrieved successfully")
}

// CreateComment creates a new comment or reply on a video
func (h *Handler) CreateComment(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_video_id", "Invalid video ID format", err)
		return
	}

	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		h.response.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req struct {
		Content  string     `json:"content" binding:"required"`
		ParentID *uuid.UUID `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "content", "Invalid request body")
		return
	}

	// Empty-content policy lives here at the UI boundary, not in the store.
	content := strings.TrimSpace(req.Content)
	if content == "" {
		h.response.ValidationErrorResponse(c, "content", "Comment content must not be empty")
		return
	}

	created, err := h.service.AddComment(c.Request.Context(), videoID, userID, content, req.ParentID)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to create comment", err)
		return
	}

	h.response.SuccessResponse(c, created, "Comment created successfully")
}

// DeleteComment deletes a comment owned by the requester. Not-found and
// not-owner outcomes are collapsed to a success response at this boundary;
// callers that need the distinction use the service's typed errors directly.
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_comment_id", "Invalid comment ID format", err)
		return
	}

	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		h.response.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		if errors.Is(err, ErrCommentNotFound) || errors.Is(err, ErrNotCommentOwner) {
			h.response.SuccessResponse(c, nil, "Comment deleted successfully")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to delete comment", err)
		return
	}

	h.response.SuccessResponse(c, nil, "Comment deleted successfully")
}

// SetReaction sets, switches, or clears the viewer's reaction on a comment
func (h *Handler) SetReaction(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_comment_id", "Invalid comment ID format", err)
		return
	}

	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		h.response.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "type", "Invalid request body")
		return
	}

	target := Type(strings.ToUpper(req.Type))
	if target != TypeLike && target != TypeDislike && target != TypeNone {
		h.response.ValidationErrorResponse(c, "type", "Invalid reaction type")
		return
	}

	if err := h.service.SetReaction(c.Request.Context(), commentID, userID, target); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			h.response.NotFoundResponse(c, "Comment not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to set reaction", err)
		return
	}

	h.response.SuccessResponse(c, nil, "Reaction updated successfully")
}

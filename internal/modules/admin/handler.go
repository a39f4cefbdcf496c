package admin

import (
	"errors"
	"net/http"
	"strconv"

	"youquote/internal/domain"
	"youquote/internal/middleware"
	"youquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	trash := protected.Group("/trash", middleware.RequirePermission(domain.PermRestoreQuote))
	{
		trash.GET("", h.ListTrashed)
		trash.GET("/:id", h.ShowTrashed)
		trash.POST("/:id", h.Restore)
		trash.DELETE("/:id", h.Purge)
	}

	protected.GET("/admin/stats", middleware.AdminOnly(), h.GetStats)
}

// ListTrashed returns soft-deleted quotes.
// @Summary		List trashed quotes
// @Tags		Admin
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{} "Admin only"
// @Router		/trash [GET]
func (h *Handler) ListTrashed(c *gin.Context) {
	views, err := h.service.ListTrashed(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "Trashed quotes", views)
}

func (h *Handler) ShowTrashed(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}
	view, err := h.service.ShowTrashed(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Restore puts a trashed quote back.
// @Summary		Restore quote
// @Tags		Admin
// @Param		id	path	int	true	"quote id"
// @Success		200	{object}	domain.QuoteView
// @Failure		400	{object}	map[string]interface{} "Quote is not deleted"
// @Failure		404	{object}	map[string]interface{} "Quote not found"
// @Router		/trash/{id} [POST]
func (h *Handler) Restore(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}
	view, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Quote restored", view)
}

func (h *Handler) Purge(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}
	if err := h.service.Purge(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Quote permanently deleted", gin.H{"id": id})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuoteNotFound), errors.Is(err, ErrNothingToPurge):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
	case errors.Is(err, ErrNotInTrash):
		response.Error(c, http.StatusBadRequest, "NOT_DELETED", "Quote is not deleted")
	default:
		response.Internal(c, err)
	}
}

func quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return 0, false
	}
	return id, true
}

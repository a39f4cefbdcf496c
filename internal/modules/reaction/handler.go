package reaction

import (
	"errors"
	"net/http"
	"strconv"

	"youquote/internal/domain"
	"youquote/internal/middleware"
	"youquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves one reaction kind. Mount it twice for likes and favorites.
type Handler struct {
	service    *Service
	kind       domain.ReactionKind
	addPerm    domain.Permission
	removePerm domain.Permission
}

func NewLikeHandler(service *Service) *Handler {
	return &Handler{
		service:    service,
		kind:       domain.ReactionLike,
		addPerm:    domain.PermLikeQuote,
		removePerm: domain.PermDislikeQuote,
	}
}

func NewFavoriteHandler(service *Service) *Handler {
	return &Handler{
		service:    service,
		kind:       domain.ReactionFavorite,
		addPerm:    domain.PermAddFavorite,
		removePerm: domain.PermDeleteFavorite,
	}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, prefix string) {
	g := protected.Group(prefix)
	{
		g.GET("", middleware.RequirePermission(h.addPerm), h.ListMine)
		g.POST("", middleware.RequirePermission(h.addPerm), h.Toggle)
		g.GET("/quote/:id", middleware.RequirePermission(h.addPerm), h.ListForQuote)
		g.DELETE("/:quoteId", middleware.RequirePermission(h.removePerm), h.Remove)
	}
}

// Toggle adds the reaction if absent, removes it otherwise.
// @Summary		Toggle like or favorite
// @Tags		Reactions
// @Param		request	body	ToggleRequest	true	"quote_id"
// @Success		201	{object}	ToggleResponse "Added"
// @Success		200	{object}	ToggleResponse "Removed"
// @Failure		404	{object}	map[string]interface{} "Quote not found"
// @Failure		410	{object}	map[string]interface{} "Quote deleted"
// @Router		/likes [POST]
func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "quote_id is required")
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	result, err := h.service.Toggle(c.Request.Context(), h.kind, principal, req.QuoteID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if result.State == domain.ToggleRemoved {
		response.Message(c, http.StatusOK, string(h.kind)+" removed", result)
		return
	}
	response.Message(c, http.StatusCreated, string(h.kind)+" added", result)
}

func (h *Handler) ListMine(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	entries, err := h.service.ListMine(c.Request.Context(), h.kind, principal)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "Your "+h.kind.Table(), entries)
}

func (h *Handler) ListForQuote(c *gin.Context) {
	quoteID, ok := parseID(c, "id")
	if !ok {
		return
	}
	reactors, err := h.service.ListForQuote(c.Request.Context(), h.kind, quoteID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.List(c, "Users who reacted", reactors)
}

func (h *Handler) Remove(c *gin.Context) {
	quoteID, ok := parseID(c, "quoteId")
	if !ok {
		return
	}
	principal, _ := middleware.PrincipalFrom(c)
	if err := h.service.Remove(c.Request.Context(), h.kind, principal, quoteID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, string(h.kind)+" removed", gin.H{"quote_id": quoteID})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuoteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
	case errors.Is(err, ErrQuoteGone):
		response.Error(c, http.StatusGone, "GONE", "Quote has been deleted")
	case errors.Is(err, ErrReactionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No "+string(h.kind)+" for this quote")
	default:
		response.Internal(c, err)
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return 0, false
	}
	return id, true
}

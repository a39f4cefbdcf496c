package taxonomy

import (
	"errors"
	"net/http"
	"strconv"

	"youquote/internal/domain"
	"youquote/internal/middleware"
	"youquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type permissions struct {
	view, create, edit, remove domain.Permission
}

// Handler serves CRUD for one taxonomy kind.
type Handler struct {
	service *Service
	perms   permissions
}

func NewHandler(service *Service) *Handler {
	perms := permissions{
		view:   domain.PermViewAllCategories,
		create: domain.PermCreateCategories,
		edit:   domain.PermEditCategories,
		remove: domain.PermDeleteCategories,
	}
	if service.Kind() == domain.TaxonomyTag {
		perms = permissions{
			view:   domain.PermViewAllTags,
			create: domain.PermCreateTags,
			edit:   domain.PermEditTags,
			remove: domain.PermDeleteTags,
		}
	}
	return &Handler{service: service, perms: perms}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, prefix string) {
	g := protected.Group(prefix)
	{
		g.GET("", middleware.RequirePermission(h.perms.view), h.List)
		g.GET("/:id", middleware.RequirePermission(h.perms.view), h.Get)
		g.POST("", middleware.RequirePermission(h.perms.create), h.Create)
		g.PUT("/:id", middleware.RequirePermission(h.perms.edit), h.Update)
		g.DELETE("/:id", middleware.RequirePermission(h.perms.remove), h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	terms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "All "+h.service.Kind().Table(), terms)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	term, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, term)
}

func (h *Handler) Create(c *gin.Context) {
	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}
	term, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, string(h.service.Kind())+" created", term)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}
	term, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, string(h.service.Kind())+" updated", term)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, string(h.service.Kind())+" deleted", gin.H{"id": id})
}

func (h *Handler) id(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+string(h.service.Kind())+" id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", string(h.service.Kind())+" not found")
	default:
		response.Internal(c, err)
	}
}

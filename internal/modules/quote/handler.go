package quote

import (
	"errors"
	"net/http"
	"strconv"

	"youquote/internal/domain"
	"youquote/internal/middleware"
	"youquote/internal/pkg/response"
	"youquote/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	viewAll := middleware.RequirePermission(domain.PermViewAllQuotes)

	quotes := protected.Group("/quotes")
	{
		quotes.GET("", viewAll, h.ListValidated)
		quotes.GET("/pending", middleware.RequirePermission(domain.PermValidateQuote), h.ListPending)
		quotes.GET("/mine", middleware.RequirePermission(domain.PermViewMyQuotes), h.ListMine)
		quotes.GET("/random", viewAll, h.Random)
		quotes.GET("/popular", viewAll, h.Popular)
		quotes.GET("/length", viewAll, h.FilterByLength)
		quotes.GET("/:id", viewAll, h.View)
		quotes.POST("", middleware.RequirePermission(domain.PermCreateQuote), h.Create)
		quotes.PUT("/:id", middleware.RequirePermission(domain.PermEditQuote), h.Update)
		quotes.PATCH("/:id", middleware.RequirePermission(domain.PermEditQuote), h.Update)
		quotes.DELETE("/:id", middleware.RequirePermission(domain.PermDeleteQuote), h.Destroy)
		quotes.POST("/:id/validate", h.Validate)
	}

	protected.GET("/categories/:id/quotes", viewAll, h.byTerm(domain.TaxonomyCategory))
	protected.GET("/tags/:id/quotes", viewAll, h.byTerm(domain.TaxonomyTag))
}

// ListValidated returns the public listing.
// @Summary		List validated quotes
// @Tags		Quotes
// @Success		200	{object}	map[string]interface{}
// @Router		/quotes [GET]
func (h *Handler) ListValidated(c *gin.Context) {
	views, err := h.service.ListByValidation(c.Request.Context(), true)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "Validated quotes", views)
}

func (h *Handler) ListPending(c *gin.Context) {
	views, err := h.service.ListByValidation(c.Request.Context(), false)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "Quotes awaiting validation", views)
}

func (h *Handler) ListMine(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	views, err := h.service.ListMine(c.Request.Context(), principal)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.List(c, "Your quotes", views)
}

func (h *Handler) Random(c *gin.Context) {
	count, ok := queryInt(c, "count", 1)
	if !ok {
		return
	}
	views, err := h.service.Random(c.Request.Context(), count)
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, "Random quotes", views)
}

func (h *Handler) Popular(c *gin.Context) {
	limit, ok := queryInt(c, "limit", DefaultPopularLimit)
	if !ok {
		return
	}
	views, err := h.service.Popular(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, "Most popular quotes", views)
}

// FilterByLength lists quotes by word count.
// @Summary		Filter quotes by length
// @Tags		Quotes
// @Param		min	query	int	false	"minimum word count, default 0"
// @Param		max	query	int	false	"maximum word count, default 1000"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "min greater than max"
// @Router		/quotes/length [GET]
func (h *Handler) FilterByLength(c *gin.Context) {
	min, ok := queryInt(c, "min", 0)
	if !ok {
		return
	}
	max, ok := queryInt(c, "max", 0)
	if !ok {
		return
	}
	views, err := h.service.FilterByLength(c.Request.Context(), min, max)
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, "Quotes filtered by length", views)
}

// View returns a quote and increments its popularity.
// @Summary		Show quote
// @Tags		Quotes
// @Param		id	path	int	true	"quote id"
// @Success		200	{object}	domain.QuoteView
// @Failure		404	{object}	map[string]interface{} "Quote not found"
// @Router		/quotes/{id} [GET]
func (h *Handler) View(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.service.View(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	view, err := h.service.Create(c.Request.Context(), principal, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Quote created and awaiting validation", view)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quote data", errs)
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	view, err := h.service.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Quote updated", view)
}

// Destroy soft-deletes a quote.
// @Summary		Delete quote
// @Tags		Quotes
// @Param		id	path	int	true	"quote id"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{} "Not the author"
// @Failure		404	{object}	map[string]interface{} "Quote not found"
// @Failure		410	{object}	map[string]interface{} "Quote already deleted"
// @Router		/quotes/{id} [DELETE]
func (h *Handler) Destroy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	if err := h.service.Destroy(c.Request.Context(), principal, id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Quote deleted", gin.H{"id": id})
}

func (h *Handler) Validate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	view, err := h.service.Validate(c.Request.Context(), principal, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Quote validated", view)
}

func (h *Handler) byTerm(kind domain.TaxonomyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		result, err := h.service.ListByTerm(c.Request.Context(), kind, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Body{
			Success: true,
			Message: "Quotes with " + string(kind) + " " + result.Term.Name,
			Data:    result,
			Meta:    &response.Meta{Count: len(result.Quotes)},
		})
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to modify this quote")
	case errors.Is(err, ErrQuoteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
	case errors.Is(err, ErrTermNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category or tag not found")
	case errors.Is(err, ErrQuoteGone):
		response.Error(c, http.StatusGone, "GONE", "Quote has been deleted")
	default:
		response.Internal(c, err)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be an integer")
		return 0, false
	}
	return v, true
}

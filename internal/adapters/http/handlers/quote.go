package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/app"
)

// ExportFilename is the attachment name used by GET /quotes/export.
const ExportFilename = "quotes.json"

// importFormField is the multipart field carrying an uploaded quotes file.
const importFormField = "file"

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /api/v1/quotes
// Returns the quotes matching the current filter and redraws the display.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteListResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	ctx := c.Request.Context()

	quotes, err := h.service.View(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	filter, err := h.service.Filter(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(filter, quotes))
}

// AddQuote handles POST /api/v1/quotes
// Appends a quote; both fields are required.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.AddQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest

	// Empty fields are checked by the service so the CLI and the API
	// raise the same notice.
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// RandomQuote handles GET /api/v1/quotes/random
// Picks a quote from the filtered list, shows it and remembers it.
//
// @Summary Show a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, err := h.service.ShowRandom(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// LastViewed handles GET /api/v1/quotes/last-viewed
//
// @Summary Last quote shown in this session
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/last-viewed [get]
func (h *QuoteHandler) LastViewed(c *gin.Context) {
	quote, err := h.service.LastViewed(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Export handles GET /api/v1/quotes/export
// Serves the full list as a downloadable JSON file.
//
// @Summary Export quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/quotes/export [get]
func (h *QuoteHandler) Export(c *gin.Context) {
	var buf bytes.Buffer

	if err := h.service.Export(c.Request.Context(), &buf); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

// Import handles POST /api/v1/quotes/import
// Accepts a JSON array either as the raw body or as the multipart field "file".
//
// @Summary Import quotes
// @Tags quotes
// @Accept json,mpfd
// @Produce json
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/import [post]
func (h *QuoteHandler) Import(c *gin.Context) {
	var body io.Reader = c.Request.Body

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile(importFormField)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrorCodeBadRequest,
				`multipart upload requires a "file" field`,
			).WithTraceID(dto.GetTraceID(c)))
			return
		}

		file, err := header.Open()
		if err != nil {
			dto.HandleError(c, err)
			return
		}
		defer file.Close()

		body = file
	}

	n, err := h.service.Import(c.Request.Context(), body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Imported: n,
		Total:    h.service.Count(),
		Message:  app.NoticeImported,
	})
}

// Categories handles GET /api/v1/categories
//
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (h *QuoteHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: h.service.Categories()})
}

// GetFilter handles GET /api/v1/filter
//
// @Summary Current category filter
// @Tags categories
// @Produce json
// @Success 200 {object} dto.FilterResponse
// @Router /api/v1/filter [get]
func (h *QuoteHandler) GetFilter(c *gin.Context) {
	filter, err := h.service.Filter(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FilterResponse{Category: filter})
}

// SetFilter handles PUT /api/v1/filter
// Persists the filter and returns the quotes it selects.
//
// @Summary Change the category filter
// @Tags categories
// @Accept json
// @Produce json
// @Param filter body dto.SetFilterRequest true "Filter"
// @Success 200 {object} dto.QuoteListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/filter [put]
func (h *QuoteHandler) SetFilter(c *gin.Context) {
	var req dto.SetFilterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quotes, err := h.service.SetFilter(c.Request.Context(), req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(req.Category, quotes))
}

// RegisterQuoteRoutes registers quote, category and filter routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.AddQuote)
	quotes.GET("/random", h.RandomQuote)
	quotes.GET("/last-viewed", h.LastViewed)
	quotes.GET("/export", h.Export)
	quotes.POST("/import", h.Import)

	rg.GET("/categories", h.Categories)
	rg.GET("/filter", h.GetFilter)
	rg.PUT("/filter", h.SetFilter)
}

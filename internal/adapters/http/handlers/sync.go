package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/app"
)

// SyncHandler exposes manual sync triggers.
type SyncHandler struct {
	syncer *app.Syncer
}

// NewSyncHandler creates a new sync handler.
func NewSyncHandler(syncer *app.Syncer) *SyncHandler {
	return &SyncHandler{syncer: syncer}
}

// syncStatusResponse is the response structure for GET /sync.
type syncStatusResponse struct {
	State string `json:"state"`
}

// TriggerSync handles POST /api/v1/sync
// Runs one sync cycle, or joins the one already running. Remote failures
// are reported in the body; the status is always 200.
//
// @Summary Trigger a sync cycle
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Router /api/v1/sync [post]
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	report := h.syncer.RunOnce(c.Request.Context())

	resp := dto.SyncResponse{
		Conflict:   report.Conflict,
		Fetched:    report.Fetched,
		Pushed:     report.Pushed,
		Shared:     report.Shared,
		DurationMS: report.Duration.Milliseconds(),
	}

	if report.FetchErr != nil {
		resp.FetchError = report.FetchErr.Error()
	}

	if report.PushErr != nil {
		resp.PushError = report.PushErr.Error()
	}

	c.JSON(http.StatusOK, resp)
}

// SyncStatus handles GET /api/v1/sync
func (h *SyncHandler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, syncStatusResponse{State: h.syncer.State().String()})
}

// RegisterSyncRoutes registers sync routes on the given router group.
func (h *SyncHandler) RegisterSyncRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync", h.TriggerSync)
	rg.GET("/sync", h.SyncStatus)
}

// DisplayHandler exposes what the widget currently shows.
type DisplayHandler struct {
	surface *render.MemorySurface
}

// NewDisplayHandler creates a new display handler.
func NewDisplayHandler(surface *render.MemorySurface) *DisplayHandler {
	return &DisplayHandler{surface: surface}
}

// Display handles GET /api/v1/display
// Returns the last rendered frame and the last notice.
//
// @Summary Current display content
// @Tags display
// @Produce json
// @Success 200 {object} render.Snapshot
// @Router /api/v1/display [get]
func (h *DisplayHandler) Display(c *gin.Context) {
	c.JSON(http.StatusOK, h.surface.Snapshot())
}

// RegisterDisplayRoutes registers display routes on the given router group.
func (h *DisplayHandler) RegisterDisplayRoutes(rg *gin.RouterGroup) {
	rg.GET("/display", h.Display)
}

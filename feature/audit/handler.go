package audit

import (
	"errors"

	"device-auditor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for enrollment audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/run", h.HandleRunAudit)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
	group.Delete("/runs/:id", h.HandleDeleteRun)
	group.Get("/reports", h.HandleListReports)
}

// HandleRunAudit triggers one enrollment audit.
// @Summary Run Enrollment Audit
// @Description Loads the inventory snapshots, reconciles them, writes the CSV report, and records the run. May take a while on large inventories.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} RunDetail "Run summary with defects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/run [post]
func (h *Handler) HandleRunAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Audit triggered via API")

	detail, err := h.service.RunAudit(c.Context())
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(detail)
}

// HandleListRuns lists recent audit runs.
// @Summary List Audit Runs
// @Description Returns recent audit runs, newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} Run
// @Failure 503 {object} map[string]string "History disabled (no database)"
// @Router /audit/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	runs, err := h.service.ListRuns(c.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

// HandleGetRun returns one audit run including its defect list.
// @Summary Get Audit Run
// @Description Returns one audit run by id, with skipped-record defects expanded.
// @Tags audit
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} RunDetail
// @Failure 404 {object} map[string]string "Run not found"
// @Router /audit/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	detail, err := h.service.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return runError(c, err)
	}
	return c.JSON(detail)
}

// HandleDeleteRun deletes one audit run and its stored report.
// @Summary Delete Audit Run
// @Description Deletes a run record and removes its report object from storage.
// @Tags audit
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Run not found"
// @Router /audit/runs/{id} [delete]
func (h *Handler) HandleDeleteRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id := c.Params("id")
	if err := h.service.DeleteRun(c.Context(), id); err != nil {
		return runError(c, err)
	}

	l.Info("Audit run deleted", zap.String("run_id", id))
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleListReports lists stored report objects.
// @Summary List Reports
// @Description Returns the report objects currently retained in storage, newest first.
// @Tags audit
// @Produce json
// @Success 200 {array} string
// @Failure 503 {object} map[string]string "Storage sink not configured"
// @Router /audit/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	reports, err := h.service.ListReports(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reports)
}

// runError maps store errors to HTTP statuses.
func runError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	case errors.Is(err, ErrHistoryDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

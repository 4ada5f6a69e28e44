package database

import (
	"errors"

	"stock-api/core/logger"
	"stock-api/core/utils"
	"stock-api/feature/database/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the database feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// NewRouter builds the standalone router mounted by the server under /database.
// Its routes are relative to the mount point.
func NewRouter(service *Service) *fiber.App {
	router := fiber.New()
	NewHandler(service).RegisterRoutes(router)
	return router
}

// RegisterRoutes registers the database routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)

	app.Get("/fundamentals", h.HandleListFundamentals)
	app.Post("/fundamentals", h.HandleUpsertFundamentals)
	app.Get("/fundamentals/:ticker", h.HandleGetFundamental)

	app.Get("/quotations", h.HandleListQuotations)
	app.Post("/quotations", h.HandleInsertQuotations)

	app.Get("/indicators", h.HandleIndicators)
	app.Post("/indicators/snapshot", h.HandleSnapshot)
	app.Get("/indicators/snapshots", h.HandleListSnapshots)
	app.Get("/indicators/snapshots/:name", h.HandleGetSnapshot)

	app.Get("/tables/:name/columns", h.HandleTableColumns)
}

// HandleHealth reports database and storage state.
// @Summary Database and storage health
// @Tags database
// @Produce json
// @Success 200 {object} HealthReport
// @Failure 503 {object} HealthReport
// @Router /database/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Health(c.Context())
	if !report.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleListFundamentals lists all fundamentals.
// @Summary List fundamentals
// @Tags database
// @Produce json
// @Success 200 {array} models.Fundamental
// @Failure 503 {object} map[string]string
// @Router /database/fundamentals [get]
func (h *Handler) HandleListFundamentals(c *fiber.Ctx) error {
	fundamentals, err := h.service.ListFundamentals(c.Context())
	if err != nil {
		return h.fail(c, "List fundamentals failed", err)
	}
	return c.JSON(fundamentals)
}

// HandleGetFundamental returns the fundamental of one ticker.
// @Summary Get one fundamental
// @Tags database
// @Produce json
// @Param ticker path string true "Ticker"
// @Success 200 {object} models.Fundamental
// @Failure 404 {object} map[string]string
// @Router /database/fundamentals/{ticker} [get]
func (h *Handler) HandleGetFundamental(c *fiber.Ctx) error {
	f, err := h.service.GetFundamental(c.Context(), c.Params("ticker"))
	if err != nil {
		return h.fail(c, "Get fundamental failed", err)
	}
	return c.JSON(f)
}

// HandleUpsertFundamentals inserts or overwrites fundamentals.
// @Summary Upsert fundamentals
// @Tags database
// @Accept json
// @Produce json
// @Param fundamentals body []models.Fundamental true "Fundamentals"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /database/fundamentals [post]
func (h *Handler) HandleUpsertFundamentals(c *fiber.Ctx) error {
	var fundamentals []models.Fundamental
	if err := c.BodyParser(&fundamentals); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expected a JSON array of fundamentals"})
	}

	n, err := h.service.UpsertFundamentals(c.Context(), fundamentals)
	if err != nil {
		return h.fail(c, "Upsert fundamentals failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"upserted": n})
}

// HandleListQuotations lists quotations.
// @Summary List quotations
// @Tags database
// @Produce json
// @Param ticker query string false "Ticker filter"
// @Param limit query int false "Most recent bars only"
// @Success 200 {array} models.Quotation
// @Router /database/quotations [get]
func (h *Handler) HandleListQuotations(c *fiber.Ctx) error {
	quotations, err := h.service.ListQuotations(c.Context(), c.Query("ticker"), utils.ToInt(c.Query("limit")))
	if err != nil {
		return h.fail(c, "List quotations failed", err)
	}
	return c.JSON(quotations)
}

// HandleInsertQuotations appends quotations.
// @Summary Insert quotations
// @Tags database
// @Accept json
// @Produce json
// @Param quotations body []models.Quotation true "Quotations"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /database/quotations [post]
func (h *Handler) HandleInsertQuotations(c *fiber.Ctx) error {
	var quotations []models.Quotation
	if err := c.BodyParser(&quotations); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expected a JSON array of quotations"})
	}

	n, err := h.service.InsertQuotations(c.Context(), quotations)
	if err != nil {
		return h.fail(c, "Insert quotations failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted": n})
}

// HandleIndicators returns the current ranking.
// @Summary Ranked indicators
// @Tags database
// @Produce json
// @Success 200 {array} strategy.Indicator
// @Router /database/indicators [get]
func (h *Handler) HandleIndicators(c *fiber.Ctx) error {
	indicators, err := h.service.Indicators(c.Context())
	if err != nil {
		return h.fail(c, "Indicators failed", err)
	}
	return c.JSON(indicators)
}

// HandleSnapshot archives the current ranking in object storage.
// @Summary Archive indicators
// @Tags database
// @Produce json
// @Param ensure query boolean false "Create the bucket when missing"
// @Success 201 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /database/indicators/snapshot [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	name, err := h.service.Snapshot(c.Context(), utils.ToBool(c.Query("ensure")))
	if err != nil {
		return h.fail(c, "Snapshot failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"object": name})
}

// HandleListSnapshots lists archived rankings.
// @Summary List snapshots
// @Tags database
// @Produce json
// @Success 200 {array} string
// @Router /database/indicators/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	names, err := h.service.ListSnapshots(c.Context())
	if err != nil {
		return h.fail(c, "List snapshots failed", err)
	}
	return c.JSON(names)
}

// HandleGetSnapshot returns one archived ranking.
// @Summary Get snapshot
// @Tags database
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {array} strategy.Indicator
// @Router /database/indicators/snapshots/{name} [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	data, err := h.service.GetSnapshot(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Get snapshot failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleTableColumns inspects a table of the feature.
// @Summary Inspect table columns
// @Tags database
// @Produce json
// @Param name path string true "Table name"
// @Success 200 {array} database.ColumnInfo
// @Router /database/tables/{name}/columns [get]
func (h *Handler) HandleTableColumns(c *fiber.Ctx) error {
	columns, err := h.service.TableColumns(c.Params("name"))
	if err != nil {
		return h.fail(c, "Table inspection failed", err)
	}
	return c.JSON(columns)
}

// fail maps service errors to status codes; unexpected ones are logged.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrStorageUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalid):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

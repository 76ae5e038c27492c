package search

import (
	"errors"

	"search-manager/core/acl"
	"search-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for search index management.
type Handler struct {
	service     *Service
	rolesHeader string
}

// NewHandler creates a new HTTP handler. rolesHeader names the header carrying
// the caller's roles.
func NewHandler(service *Service, rolesHeader string) *Handler {
	return &Handler{service: service, rolesHeader: rolesHeader}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)

	group := app.Group("/search")
	group.Get("/indexes", h.HandleStatus)
	group.Post("/indexes/prepare", h.HandlePrepare)
	group.Get("/filter", h.HandleFilter)
	group.Get("/events/:id/acl", h.HandleEventACL)
}

// HandleHealth reports engine and database health.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Health(c.Context())
	status := fiber.StatusOK
	if !report.Healthy() {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   statusText(report.Healthy()),
		"engine":   report.Engine,
		"database": report.Database,
		"missing":  report.MissingColumns,
	})
}

// HandleStatus returns the drift between the indexes and their desired state.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Status(c.Context())
	if err != nil {
		l.Error("Index status check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandlePrepare creates missing indexes and reconciles their settings.
// The optional index query parameter limits the run to one index.
func (h *Handler) HandlePrepare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Query("index")

	results, err := h.service.Prepare(c.Context(), name)
	if errors.Is(err, ErrUnknownIndex) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Index preparation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"results": results,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "prepared",
		"results": results,
	})
}

// HandleFilter returns the read filter for the roles in the roles header.
func (h *Handler) HandleFilter(c *fiber.Ctx) error {
	roles := acl.RolesFromHeader(c.Get(h.rolesHeader))
	return c.JSON(h.service.ReadFilter(roles))
}

// HandleEventACL returns the stored and the encoded ACL of an event.
func (h *Handler) HandleEventACL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	result, err := h.service.EventACL(c.Context(), int64(id))
	switch {
	case errors.Is(err, ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrDatabaseUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Loading event acl failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

func statusText(ok bool) string {
	if ok {
		return "ok"
	}
	return "degraded"
}

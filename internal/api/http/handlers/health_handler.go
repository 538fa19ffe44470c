package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ticket-service/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     repository.TicketRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets repository.TicketRepository) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the ticket store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{}
	ready := true

	if _, err := h.tickets.FindAll(c.UserContext()); err != nil {
		depStatus["ticket_store"] = err.Error()
		ready = false
	} else {
		depStatus["ticket_store"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"code":    "DEPENDENCY_UNAVAILABLE",
		"message": "one or more dependencies unavailable",
	})
}

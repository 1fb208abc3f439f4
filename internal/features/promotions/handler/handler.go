package handler

import (
	"promo-banner/internal/core/logger"
	"promo-banner/internal/features/promotions/domain"
	"promo-banner/internal/features/promotions/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PromotionHandler handles HTTP requests for the banner status API.
type PromotionHandler struct {
	service ports.PromotionService
	display ports.FrameReader
	health  ports.HealthChecker
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(service ports.PromotionService, display ports.FrameReader, health ports.HealthChecker) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		display: display,
		health:  health,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// PromotionsResponse is the active set and the index being shown.
type PromotionsResponse struct {
	Items        []domain.Promotion `json:"items"`
	CurrentIndex int                `json:"current_index"`
	Count        int                `json:"count"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Register mounts the handler's routes on router.
func (h *PromotionHandler) Register(router fiber.Router) {
	router.Get("/banner", h.GetBanner)
	router.Get("/promotions", h.GetPromotions)
	router.Post("/promotions/refresh", h.RefreshPromotions)
	router.Get("/health", h.Health)
}

// GetBanner godoc
// @Summary Get the banner as displayed
// @Description Returns the slide currently on screen, the container state and whether a transition is running
// @Tags banner
// @Produce json
// @Success 200 {object} domain.Frame
// @Router /banner [get]
func (h *PromotionHandler) GetBanner(c *fiber.Ctx) error {
	return c.JSON(h.display.Frame())
}

// GetPromotions godoc
// @Summary List active promotions
// @Description Returns the promotions in rotation and the index currently shown
// @Tags promotions
// @Produce json
// @Success 200 {object} PromotionsResponse
// @Router /promotions [get]
func (h *PromotionHandler) GetPromotions(c *fiber.Ctx) error {
	return c.JSON(newPromotionsResponse(h.service.Snapshot()))
}

// RefreshPromotions godoc
// @Summary Revalidate promotions now
// @Description Fetches the promotions backend once, outside the refresh schedule
// @Tags promotions
// @Produce json
// @Success 200 {object} PromotionsResponse
// @Failure 502 {object} ErrorResponse
// @Router /promotions/refresh [post]
func (h *PromotionHandler) RefreshPromotions(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.Context()); err != nil {
		logger.Get().Warn("Manual refresh failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(newPromotionsResponse(h.service.Snapshot()))
}

// Health godoc
// @Summary Health check
// @Description Reports whether the snapshot cache is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *PromotionHandler) Health(c *fiber.Ctx) error {
	if err := h.health.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "cache unavailable: " + err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(HealthResponse{Status: "ok"})
}

func newPromotionsResponse(state domain.DisplayState) PromotionsResponse {
	items := []domain.Promotion(state.Items)
	if items == nil {
		items = []domain.Promotion{}
	}
	return PromotionsResponse{
		Items:        items,
		CurrentIndex: state.CurrentIndex,
		Count:        len(items),
	}
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

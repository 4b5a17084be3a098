package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"railrisk/internal/prediction"
	"railrisk/internal/risk"
)

type Handler struct {
	predictor *prediction.Predictor
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewHandler(predictor *prediction.Predictor, logger *zap.Logger) *Handler {
	return &Handler{
		predictor: predictor,
		validate:  validator.New(),
		logger:    logger,
	}
}

type predictionQuery struct {
	Line string `query:"line" validate:"required"`
	Type string `query:"type" validate:"omitempty,oneof=lirr metro-north"`
}

// GetPrediction handles GET /api/v1/prediction
func (h *Handler) GetPrediction(c *fiber.Ctx) error {
	var query predictionQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	if err := h.validate.Struct(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Line parameter is required; type must be lirr or metro-north",
			"details": err.Error(),
		})
	}

	h.logger.Info("Computing prediction",
		zap.String("line", query.Line),
		zap.String("type", query.Type))

	// Never errors: a failed weather fetch yields a degraded prediction.
	result := h.predictor.GetPrediction(c.Context(), query.Line, query.Type)

	return c.JSON(result)
}

// GetLines handles GET /api/v1/lines
func (h *Handler) GetLines(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"lines":            risk.LineBaselines(),
		"default_baseline": risk.DefaultBaseline,
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

var startTime = time.Now()

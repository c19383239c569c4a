package http

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"readme-generator/internal/domain"
	"readme-generator/internal/model"
	"readme-generator/internal/usecase"
)

type Handler struct {
	session *usecase.Session
	logger  *zap.Logger
}

func NewHandler(s *usecase.Session, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{session: s, logger: logger}
}

type fieldReq struct {
	Value string `json:"value"`
}

// Health is a liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// GetSession returns the current draft.
func (h *Handler) GetSession(c *fiber.Ctx) error {
	return JSON(c, fiber.StatusOK, h.session.Snapshot())
}

// SetField stores one field value. Any field name is accepted.
func (h *Handler) SetField(c *fiber.Ctx) error {
	// fiber reuses the params buffer after the handler returns
	name := strings.Clone(c.Params("name"))
	if name == "" {
		return Error(c, fiber.StatusBadRequest, "missing field name")
	}

	body := c.Body()
	if err := model.ValidateFieldUpdate(body); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid payload")
	}
	var req fieldReq
	if err := json.Unmarshal(body, &req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid payload")
	}

	h.session.SetField(name, req.Value)
	return JSON(c, fiber.StatusOK, h.session.Snapshot())
}

// Reset clears the draft.
func (h *Handler) Reset(c *fiber.Ctx) error {
	h.session.Reset()
	return JSON(c, fiber.StatusOK, h.session.Snapshot())
}

// GenerateReadme answers with README.md as an attachment, or 409 while
// fewer than five fields have been touched.
func (h *Handler) GenerateReadme(c *fiber.Ctx) error {
	sink := usecase.SinkFunc(func(_ context.Context, doc domain.Document) error {
		c.Attachment(doc.Filename)
		c.Set(fiber.HeaderContentType, doc.ContentType)
		return c.Status(fiber.StatusOK).Send(doc.Body)
	})

	ok, err := h.session.Generate(c.UserContext(), sink)
	if err != nil {
		h.logger.Error("README generation failed", zap.Error(err))
		return Error(c, fiber.StatusInternalServerError, "generation failed")
	}
	if !ok {
		return Error(c, fiber.StatusConflict, usecase.ErrNotReady.Error())
	}
	return nil
}

// ErrorHandler renders unhandled errors with the same body shape as the
// handlers use.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else {
			logger.Error("Unhandled request error", zap.String("path", c.Path()), zap.Error(err))
		}
		return Error(c, code, err.Error())
	}
}

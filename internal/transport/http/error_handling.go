package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *OrderHandler) handleServiceError(c *gin.Context, err error, op, fallback string) {
	log := h.log.Ctx(c.Request.Context())

	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "order form rejected",
			logger.String("op", op),
			logger.Int("violations", len(validationErr.Messages)),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid order data",
			Errors: validationErr.Messages,
		})
	case errors.Is(err, entity.ErrDuplicateEmail):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "duplicate email rejected",
			logger.String("op", op),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: "An order with this email already exists.",
		})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

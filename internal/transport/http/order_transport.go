package httpt

import (
	"github.com/SouthBennett/pizza/internal/config"
	"github.com/SouthBennett/pizza/internal/service"
	"github.com/SouthBennett/pizza/pkg/logger"
	"github.com/SouthBennett/pizza/pkg/metric"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc     *service.OrderService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
}

func NewOrderHandler(
	svc *service.OrderService,
	log logger.Logger,
	metrics metric.HTTP,
	cfg *config.HTTP,
) *OrderHandler {
	h := &OrderHandler{
		svc:     svc,
		log:     log,
		metrics: metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.router.LoadHTMLGlob(cfg.TemplatesGlob)
	h.router.Static("/static", cfg.StaticDir)

	h.setupRoutes()

	return h
}

func (h *OrderHandler) Engine() *gin.Engine {
	return h.router
}

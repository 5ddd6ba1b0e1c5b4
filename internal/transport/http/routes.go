package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *OrderHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h.router.GET("/", h.homeHandler)
	h.router.GET("/contact-us", h.contactHandler)
	h.router.GET("/confirm", h.confirmHandler)
	h.router.GET("/admin", h.adminHandler)
	h.router.GET("/db-test", h.dbTestHandler)

	h.router.POST("/submit-order", h.submitOrderHandler)
}

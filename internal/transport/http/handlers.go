package httpt

import (
	"context"
	"net/http"
	"time"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond

	_displayTimeLayout = "Jan 2, 2006, 3:04 PM"
)

func (h *OrderHandler) homeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *OrderHandler) contactHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{})
}

// confirmHandler serves the confirmation page when visited directly,
// without order details. POST /submit-order renders the same template
// with the stored order.
func (h *OrderHandler) confirmHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation.html", gin.H{})
}

func (h *OrderHandler) submitOrderHandler(c *gin.Context) {
	const op = "transport.submitOrderHandler"

	log := h.log.Ctx(c.Request.Context())

	form := &entity.OrderForm{
		FirstName: c.PostForm("fname"),
		LastName:  c.PostForm("lname"),
		Email:     c.PostForm("email"),
		Method:    c.PostForm("method"),
		Size:      c.PostForm("size"),
		Toppings:  c.PostFormArray("toppings"),
		Comment:   c.PostForm("comment"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	order, err := h.svc.SubmitOrder(ctx, form)
	if err != nil {
		h.handleServiceError(c, err, op,
			"Sorry, there was an error processing your order. Please try again.")
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "order submitted successfully",
		logger.Int64("order_id", order.ID),
		logger.String("email", order.Email),
	)

	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"order": newOrderView(order),
	})
}

func (h *OrderHandler) adminHandler(c *gin.Context) {
	const op = "transport.adminHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.handleServiceError(c, err, op, "Database error")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"orders": views,
	})
}

// dbTestHandler dumps every stored order as JSON, mainly for checking
// store connectivity.
func (h *OrderHandler) dbTestHandler(c *gin.Context) {
	const op = "transport.dbTestHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.handleServiceError(c, err, op, "Database error")
		return
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func newOrderView(order *entity.Order) orderView {
	return orderView{
		Order:              order,
		FormattedTimestamp: order.CreatedAt.Format(_displayTimeLayout),
	}
}

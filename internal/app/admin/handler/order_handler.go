package handler

import (
	"net/http"

	"storeadmin/internal/app/admin/entity"
	"storeadmin/internal/app/admin/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler обрабатывает HTTP запросы экранов заказов и платежей
type OrderHandler struct {
	orders   service.OrderService
	payments service.PaymentService
}

// NewOrderHandler создает новый обработчик заказов и платежей
func NewOrderHandler(orders service.OrderService, payments service.PaymentService) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		payments: payments,
	}
}

// === ORDERS ===

// ListOrders обрабатывает GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), listQuery(c)...)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, orders)
}

// GetOrder обрабатывает GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus обрабатывает PUT /api/orders/:id/status
// Недопустимые переходы отклоняются до похода к storefront API
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req entity.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Order status updated"})
}

// FulfillOrder обрабатывает POST /api/orders/:id/fulfill
// Выдает покупателю цифровой контент и переводит заказ в delivered
func (h *OrderHandler) FulfillOrder(c *gin.Context) {
	var req entity.FulfillOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	if err := h.orders.Fulfill(c.Request.Context(), c.Param("id"), req.Content, req.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Order fulfilled"})
}

// === PAYMENTS ===

// ListPayments обрабатывает GET /api/payments
func (h *OrderHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context(), listQuery(c)...)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, payments)
}

// GetPayment обрабатывает GET /api/payments/:id
func (h *OrderHandler) GetPayment(c *gin.Context) {
	payment, err := h.payments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdatePaymentStatus обрабатывает PUT /api/payments/:id/status
// Всегда строгий режим: локальное состояние не меняется, если запрос упал
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var req entity.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	if err := h.payments.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Payment status updated"})
}

package handler

import (
	"net/http"

	"storeadmin/internal/app/admin/entity"
	"storeadmin/internal/app/admin/service"

	"github.com/gin-gonic/gin"
)

// UserHandler обрабатывает HTTP запросы экранов пользователей и рассылок
type UserHandler struct {
	users         service.UserService
	notifications service.NotificationService
}

// NewUserHandler создает новый обработчик пользователей и рассылок
func NewUserHandler(users service.UserService, notifications service.NotificationService) *UserHandler {
	return &UserHandler{
		users:         users,
		notifications: notifications,
	}
}

// === USERS ===

// ListUsers обрабатывает GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), listQuery(c)...)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, users)
}

// GetUser обрабатывает GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser обрабатывает POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req entity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser обрабатывает PUT /api/users/:id
// Здесь админ управляет флагом isAccepted - допуском к покупкам
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req entity.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser обрабатывает DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "User deleted successfully"})
}

// SendMessage обрабатывает POST /api/users/:id/send-message
func (h *UserHandler) SendMessage(c *gin.Context) {
	var req entity.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	if err := h.users.SendMessage(c.Request.Context(), c.Param("id"), req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Message sent"})
}

// === NOTIFICATIONS ===

// ListNotifications обрабатывает GET /api/notifications
func (h *UserHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notifications.List(c.Request.Context(), listQuery(c)...)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, notifications)
}

// GetNotification обрабатывает GET /api/notifications/:id
func (h *UserHandler) GetNotification(c *gin.Context) {
	notification, err := h.notifications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// CreateNotification обрабатывает POST /api/notifications
func (h *UserHandler) CreateNotification(c *gin.Context) {
	var req entity.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	notification, err := h.notifications.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// UpdateNotification обрабатывает PUT /api/notifications/:id
func (h *UserHandler) UpdateNotification(c *gin.Context) {
	var req entity.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "validation", Message: "invalid request body"})
		return
	}

	notification, err := h.notifications.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// DeleteNotification обрабатывает DELETE /api/notifications/:id
func (h *UserHandler) DeleteNotification(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Notification deleted successfully"})
}

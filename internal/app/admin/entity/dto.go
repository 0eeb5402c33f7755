package entity

import "time"

// DTO для запросов к storefront API и от админ-панели.
// Поля update-запросов - указатели: отправляем только измененное

type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=200"`
	Price          float64  `json:"price" validate:"required,gt=0"`
	Description    string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	CategoryID     string   `json:"categoryId" validate:"required"`
	DigitalContent []string `json:"digitalContent"`
	IsAvailable    bool     `json:"isAvailable"`
	AllowPreorder  bool     `json:"allowPreorder"`
	PreorderNote   string   `json:"preorderNote,omitempty" validate:"omitempty,max=500"`
}

type UpdateProductRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Price          *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description    *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	CategoryID     *string   `json:"categoryId,omitempty"`
	DigitalContent *[]string `json:"digitalContent,omitempty"`
	IsAvailable    *bool     `json:"isAvailable,omitempty"`
	AllowPreorder  *bool     `json:"allowPreorder,omitempty"`
	PreorderNote   *string   `json:"preorderNote,omitempty" validate:"omitempty,max=500"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
	IsActive    bool   `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	SortOrder   *int    `json:"sortOrder,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// UpdateOrderStatusRequest - тело PUT /orders/{id}/status
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending paid delivered completed cancelled"`
	Note   string      `json:"note,omitempty" validate:"omitempty,max=500"`
}

// FulfillOrderRequest - тело POST /orders/{id}/fulfill
// Backend исторически принимает поле content (в одном из деплоев digitalContent)
type FulfillOrderRequest struct {
	Content []string `json:"content" validate:"required,min=1,dive,required"`
	Note    string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// UpdatePaymentStatusRequest - тело PUT /payments/{id}/status
type UpdatePaymentStatusRequest struct {
	Status PaymentStatus `json:"status" validate:"required,oneof=pending completed failed cancelled"`
}

type CreateUserRequest struct {
	TelegramID int64  `json:"telegramId" validate:"required"`
	Username   string `json:"username,omitempty" validate:"omitempty,max=100"`
	FirstName  string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName   string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	IsAccepted bool   `json:"isAccepted"`
}

type UpdateUserRequest struct {
	Username   *string `json:"username,omitempty" validate:"omitempty,max=100"`
	FirstName  *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	IsAccepted *bool   `json:"isAccepted,omitempty"`
}

// SendMessageRequest - тело POST /users/{id}/send-message
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4096"`
}

type CreateNotificationRequest struct {
	Title         string               `json:"title" validate:"required,min=1,max=200"`
	Message       string               `json:"message" validate:"required,min=1,max=4096"`
	Audience      NotificationAudience `json:"audience" validate:"required,oneof=all specific_users"`
	TargetUserIDs []string             `json:"targetUserIds,omitempty"`
	ScheduledFor  *string              `json:"scheduledFor,omitempty"`
}

type UpdateNotificationRequest struct {
	Title         *string               `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Message       *string               `json:"message,omitempty" validate:"omitempty,min=1,max=4096"`
	Audience      *NotificationAudience `json:"audience,omitempty" validate:"omitempty,oneof=all specific_users"`
	TargetUserIDs *[]string             `json:"targetUserIds,omitempty"`
	ScheduledFor  *string               `json:"scheduledFor,omitempty"`
}

// ErrorResponse - формат ошибки, который админ-панель отдает UI
type ErrorResponse struct {
	Error   string `json:"error"`             // Машиночитаемый код (validation, not_found, upstream_error, ...)
	Message string `json:"message,omitempty"` // Человекочитаемое описание
}

// SuccessResponse - формат ответа без полезной нагрузки
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse - конверт списков, который админ-панель отдает UI.
// Наружу всегда один и тот же формат, независимо от того,
// в каком конверте ответил storefront backend
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// DashboardSnapshot - агрегированное состояние для главного экрана
type DashboardSnapshot struct {
	Users       []User               `json:"users"`
	Orders      []Order              `json:"orders"`
	Products    []Product            `json:"products"`
	Payments    []PaymentTransaction `json:"payments"`
	Categories  []Category           `json:"categories"`
	Stats       DashboardStats       `json:"stats"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// DashboardStats - производные показатели по загруженным данным
type DashboardStats struct {
	TotalUsers        int     `json:"totalUsers"`
	AcceptedUsers     int     `json:"acceptedUsers"`
	TotalOrders       int     `json:"totalOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalProducts     int     `json:"totalProducts"`
	AvailableProducts int     `json:"availableProducts"`
	TotalRevenue      float64 `json:"totalRevenue"` // Сумма платежей в статусе completed
}

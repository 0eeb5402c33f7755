package entity

import (
	"encoding/json"
	"time"
)

// ID сущностей - непрозрачные строки: backend в разных деплоях отдает
// то uuid, то mongo-подобный _id, клиент их никогда не генерирует сам

// Product представляет цифровой товар в каталоге
// digitalContent - продаваемые единицы (ключи, коды, учетки), по одной на продажу
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Description    string    `json:"description,omitempty"`
	CategoryID     string    `json:"categoryId"`
	DigitalContent []string  `json:"digitalContent"`
	IsAvailable    bool      `json:"isAvailable"`
	AllowPreorder  bool      `json:"allowPreorder"`
	PreorderNote   string    `json:"preorderNote,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Category представляет категорию каталога
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderStatus представляет статусы заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Ожидает оплаты
	OrderStatusPaid      OrderStatus = "paid"      // Оплачен, ждет выдачи
	OrderStatusDelivered OrderStatus = "delivered" // Контент выдан покупателю
	OrderStatusCompleted OrderStatus = "completed" // Завершен
	OrderStatusCancelled OrderStatus = "cancelled" // Отменен
)

// IsTerminal сообщает, допускает ли статус дальнейшие переходы
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo проверяет переход статуса заказа по state machine:
// pending -> {paid, completed, cancelled}
// paid    -> {delivered, completed, cancelled}
// delivered/completed/cancelled - терминальные
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPaid || next == OrderStatusCompleted || next == OrderStatusCancelled
	case OrderStatusPaid:
		return next == OrderStatusDelivered || next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

// OrderType различает обычную покупку и предзаказ
type OrderType string

const (
	OrderTypePurchase OrderType = "purchase"
	OrderTypePreorder OrderType = "preorder"
)

// StatusHistoryEntry - одна запись в append-only истории статусов заказа
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

// Order представляет заказ покупателя
// unitPrice - снимок цены на момент покупки, после создания не меняется;
// totalAmount считает backend, клиент ему доверяет
type Order struct {
	ID               string               `json:"id"`
	UserID           string               `json:"userId"`
	ProductID        string               `json:"productId"`
	Quantity         int                  `json:"quantity"`
	UnitPrice        float64              `json:"unitPrice"`
	TotalAmount      float64              `json:"totalAmount"`
	Status           OrderStatus          `json:"status"`
	Type             OrderType            `json:"type"`
	DeliveredContent []string             `json:"deliveredContent,omitempty"`
	StatusHistory    []StatusHistoryEntry `json:"statusHistory"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	CompletedAt      *time.Time           `json:"completedAt,omitempty"`
}

// UnmarshalJSON каноникализирует тип заказа: старые деплои backend
// не отдают поле type, такие заказы считаются обычной покупкой
func (o *Order) UnmarshalJSON(data []byte) error {
	type orderAlias Order
	var decoded orderAlias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*o = Order(decoded)
	if o.Type == "" {
		o.Type = OrderTypePurchase
	}
	return nil
}

// PaymentStatus представляет статусы платежной транзакции
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	// refunded достижим только через webhook платежного провайдера,
	// админ-панель его не выставляет
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CanTransitionTo проверяет переход статуса платежа:
// pending -> {completed, failed, cancelled}; дальше только терминальные
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}
	return next == PaymentStatusCompleted || next == PaymentStatusFailed || next == PaymentStatusCancelled
}

// PaymentTransaction представляет платеж по заказу
// Поля провайдеров заполняются в зависимости от paymentProvider
type PaymentTransaction struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"orderId"`
	UserID          string        `json:"userId"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	PaymentProvider string        `json:"paymentProvider"` // paypal, crypto и т.п.
	PaypalOrderID   string        `json:"paypalOrderId,omitempty"`
	PaypalCaptureID string        `json:"paypalCaptureId,omitempty"`
	CryptoType      string        `json:"cryptoType,omitempty"`
	CryptoAddress   string        `json:"cryptoAddress,omitempty"`
	CryptoTxHash    string        `json:"cryptoTxHash,omitempty"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"` // Заполнен тогда и только тогда, когда status == completed
}

// User представляет покупателя из Telegram
// telegramId - внешняя identity, после создания не меняется
type User struct {
	ID         string    `json:"id"`
	TelegramID int64     `json:"telegramId"`
	Username   string    `json:"username,omitempty"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	IsAccepted bool      `json:"isAccepted"` // Пока false, пользователь не может покупать
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NotificationAudience - кому адресована рассылка
type NotificationAudience string

const (
	AudienceAll           NotificationAudience = "all"
	AudienceSpecificUsers NotificationAudience = "specific_users"
)

// NotificationStatus представляет статусы рассылки
type NotificationStatus string

const (
	NotificationStatusDraft     NotificationStatus = "draft"
	NotificationStatusScheduled NotificationStatus = "scheduled"
	NotificationStatusSent      NotificationStatus = "sent"
)

// Notification представляет рассылку покупателям
// targetUserIds присутствует только при audience == specific_users
type Notification struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Message       string               `json:"message"`
	Audience      NotificationAudience `json:"audience"`
	TargetUserIDs []string             `json:"targetUserIds,omitempty"`
	Status        NotificationStatus   `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	SentAt        *time.Time           `json:"sentAt,omitempty"`
	ScheduledFor  *time.Time           `json:"scheduledFor,omitempty"`
}

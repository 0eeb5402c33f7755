package service

import (
	"context"

	"storeadmin/internal/app/admin/apiclient"
	"storeadmin/internal/app/admin/entity"
)

// Интерфейсы ресурсных клиентов, которые потребляют handlers и
// DashboardService. Реализуются типизированными клиентами из apiclient;
// в тестах подменяются моками

type ProductService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id string, req *entity.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error)
	Update(ctx context.Context, id string, req *entity.UpdateCategoryRequest) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type OrderService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, note string) error
	Fulfill(ctx context.Context, id string, content []string, note string) error
	Cached() []entity.Order
}

type PaymentService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.PaymentTransaction, error)
	Get(ctx context.Context, id string) (*entity.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error
	Cached() []entity.PaymentTransaction
}

type UserService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id string, req *entity.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	SendMessage(ctx context.Context, id string, message string) error
}

type NotificationService interface {
	List(ctx context.Context, query ...apiclient.QueryParam) ([]entity.Notification, error)
	Get(ctx context.Context, id string) (*entity.Notification, error)
	Create(ctx context.Context, req *entity.CreateNotificationRequest) (*entity.Notification, error)
	Update(ctx context.Context, id string, req *entity.UpdateNotificationRequest) (*entity.Notification, error)
	Delete(ctx context.Context, id string) error
}

// DashboardLoader загружает агрегированный снапшот главного экрана
type DashboardLoader interface {
	Load(ctx context.Context) (*entity.DashboardSnapshot, error)
	Snapshot() (*entity.DashboardSnapshot, bool)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"storeadmin/internal/app/admin/entity"
	"storeadmin/pkg/logger"
)

// DashboardService собирает данные главного экрана: пять независимых
// ресурсов грузятся параллельно и соединяются в один снапшот.
// Агрегат падает, если упал хотя бы один ресурс, и ошибка называет
// конкретные ресурсы - одна безликая ошибка на пять запросов не дает
// оператору понять, что чинить
type DashboardService struct {
	users      UserService
	orders     OrderService
	products   ProductService
	payments   PaymentService
	categories CategoryService

	mu       sync.RWMutex
	snapshot *entity.DashboardSnapshot // Последний успешный снапшот
	now      func() time.Time
}

func NewDashboardService(
	users UserService,
	orders OrderService,
	products ProductService,
	payments PaymentService,
	categories CategoryService,
) *DashboardService {
	return &DashboardService{
		users:      users,
		orders:     orders,
		products:   products,
		payments:   payments,
		categories: categories,
		now:        time.Now,
	}
}

// Load параллельно загружает все пять ресурсов и строит снапшот.
// Каждая горутина пишет в свое поле, ошибки собираются по именам ресурсов
func (s *DashboardService) Load(ctx context.Context) (*entity.DashboardSnapshot, error) {
	snapshot := &entity.DashboardSnapshot{GeneratedAt: s.now()}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
		firstErr error
	)

	fail := func(resource string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, resource)
		if firstErr == nil {
			firstErr = err
		}
		logger.Error().Err(err).Str("resource", resource).Msg("dashboard fetch failed")
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		users, err := s.users.List(ctx)
		if err != nil {
			fail("users", err)
			return
		}
		snapshot.Users = users
	}()
	go func() {
		defer wg.Done()
		orders, err := s.orders.List(ctx)
		if err != nil {
			fail("orders", err)
			return
		}
		snapshot.Orders = orders
	}()
	go func() {
		defer wg.Done()
		products, err := s.products.List(ctx)
		if err != nil {
			fail("products", err)
			return
		}
		snapshot.Products = products
	}()
	go func() {
		defer wg.Done()
		payments, err := s.payments.List(ctx)
		if err != nil {
			fail("payments", err)
			return
		}
		snapshot.Payments = payments
	}()
	go func() {
		defer wg.Done()
		categories, err := s.categories.List(ctx)
		if err != nil {
			fail("categories", err)
			return
		}
		snapshot.Categories = categories
	}()
	wg.Wait()

	if len(failures) > 0 {
		return nil, fmt.Errorf("failed to load [%s]: %w", strings.Join(failures, ", "), firstErr)
	}

	snapshot.Stats = computeStats(snapshot)

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// Snapshot возвращает последний успешный снапшот (прогретый фоновым
// обновлением), если он есть
func (s *DashboardService) Snapshot() (*entity.DashboardSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, false
	}
	return s.snapshot, true
}

// computeStats считает производные показатели по загруженным данным.
// Выручка - сумма платежей в статусе completed
func computeStats(snapshot *entity.DashboardSnapshot) entity.DashboardStats {
	stats := entity.DashboardStats{
		TotalUsers:    len(snapshot.Users),
		TotalOrders:   len(snapshot.Orders),
		TotalProducts: len(snapshot.Products),
	}

	for _, user := range snapshot.Users {
		if user.IsAccepted {
			stats.AcceptedUsers++
		}
	}
	for _, order := range snapshot.Orders {
		if order.Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	for _, product := range snapshot.Products {
		if product.IsAvailable {
			stats.AvailableProducts++
		}
	}
	for _, payment := range snapshot.Payments {
		if payment.Status == entity.PaymentStatusCompleted {
			stats.TotalRevenue += payment.Amount
		}
	}

	return stats
}

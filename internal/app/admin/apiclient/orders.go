package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// Ошибки state machine заказов, проверяются до похода в сеть
var (
	ErrOrderTerminal     = errors.New("order is in a terminal status")
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrEmptyFulfillment  = errors.New("fulfillment content must not be empty")
)

// OrderClient - клиент ресурса orders.
// Заказы создает только storefront (покупатели), поэтому у клиента нет
// Create/Delete - только чтение и переходы статусов
type OrderClient struct {
	resourceClient[entity.Order]
	cache *cache.ViewCache[entity.Order]
	now   func() time.Time
}

func NewOrderClient(transport *Transport, viewCache *cache.ViewCache[entity.Order]) *OrderClient {
	return &OrderClient{
		resourceClient: newResourceClient[entity.Order](transport, "/orders", "orders"),
		cache:          viewCache,
		now:            time.Now,
	}
}

// List загружает заказы и перезаполняет кеш экрана
func (c *OrderClient) List(ctx context.Context, query ...QueryParam) ([]entity.Order, error) {
	orders, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(orders)
	return orders, nil
}

// UpdateStatus переводит заказ в новый статус.
// Переход проверяется по state machine до отправки запроса; кеш экрана
// мутируется ТОЛЬКО после успешного ответа сервера - упавший запрос
// не оставляет локальных следов
func (c *OrderClient) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, note string) error {
	req := &entity.UpdateOrderStatusRequest{Status: status, Note: note}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	current, err := c.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if !current.CanTransitionTo(status) {
		if current.IsTerminal() {
			return newValidationError(fmt.Sprintf("%v: %s", ErrOrderTerminal, current))
		}
		return newValidationError(fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, current, status))
	}

	_, err = c.transport.Send(ctx, http.MethodPut, c.basePath+"/"+id+"/status", req, nil)
	if err != nil {
		return err
	}

	c.applyStatus(id, status, note, nil)
	return nil
}

// Fulfill выдает покупателю цифровой контент и атомарно переводит заказ
// в delivered. Допустим только из нетерминального статуса
func (c *OrderClient) Fulfill(ctx context.Context, id string, content []string, note string) error {
	if len(content) == 0 {
		return newValidationError(ErrEmptyFulfillment.Error())
	}
	req := &entity.FulfillOrderRequest{Content: content, Note: note}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	current, err := c.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if current.IsTerminal() {
		return newValidationError(fmt.Sprintf("%v: %s", ErrOrderTerminal, current))
	}

	_, err = c.transport.Send(ctx, http.MethodPost, c.basePath+"/"+id+"/fulfill", req, nil)
	if err != nil {
		return err
	}

	c.applyStatus(id, entity.OrderStatusDelivered, note, content)
	return nil
}

// currentStatus берет статус из кеша экрана, при промахе - с сервера
func (c *OrderClient) currentStatus(ctx context.Context, id string) (entity.OrderStatus, error) {
	if order, ok := c.cache.Get(id); ok {
		return order.Status, nil
	}
	order, err := c.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

// applyStatus мутирует кешированный заказ после подтвержденного перехода:
// новый статус плюс append-only запись в statusHistory со временем
// наблюдения клиента (оно может отличаться от серверного)
func (c *OrderClient) applyStatus(id string, status entity.OrderStatus, note string, delivered []string) {
	observedAt := c.now()
	c.cache.Patch(id, func(order entity.Order) entity.Order {
		order.Status = status
		order.UpdatedAt = observedAt
		order.StatusHistory = append(order.StatusHistory, entity.StatusHistoryEntry{
			Status:    status,
			Timestamp: observedAt,
			Note:      note,
		})
		if delivered != nil {
			order.DeliveredContent = delivered
		}
		if status == entity.OrderStatusCompleted || status == entity.OrderStatusDelivered {
			order.CompletedAt = &observedAt
		}
		return order
	})
}

// Cached возвращает текущее содержимое кеша экрана
func (c *OrderClient) Cached() []entity.Order {
	return c.cache.Items()
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// PaymentClient - клиент ресурса payments.
// Платежи создает платежный провайдер, админ-панель только читает их
// и переводит статусы
type PaymentClient struct {
	resourceClient[entity.PaymentTransaction]
	cache *cache.ViewCache[entity.PaymentTransaction]
	now   func() time.Time
}

func NewPaymentClient(transport *Transport, viewCache *cache.ViewCache[entity.PaymentTransaction]) *PaymentClient {
	return &PaymentClient{
		resourceClient: newResourceClient[entity.PaymentTransaction](transport, "/payments", "transactions"),
		cache:          viewCache,
		now:            time.Now,
	}
}

// List загружает платежи и перезаполняет кеш экрана
func (c *PaymentClient) List(ctx context.Context, query ...QueryParam) ([]entity.PaymentTransaction, error) {
	payments, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(payments)
	return payments, nil
}

// UpdateStatus переводит платеж в новый статус. Строгий режим:
// кеш мутируется только после успешного ответа сервера
func (c *PaymentClient) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	if err := c.sendStatus(ctx, id, status); err != nil {
		return err
	}
	c.applyStatus(id, status)
	return nil
}

// UpdateStatusOptimistic - явный lenient режим: кеш мутируется даже если
// ЗАПРОС упал, ошибка при этом все равно возвращается. Локальное состояние
// после такого вызова может разойтись с сервером до следующего List -
// вызывающий выбирает этот режим осознанно, по умолчанию он не используется.
// Lenient распространяется только на сбой самого запроса: провал локальной
// валидации (включая state machine) означает, что запрос не отправлялся
// вовсе, и кеш не трогается
func (c *PaymentClient) UpdateStatusOptimistic(ctx context.Context, id string, status entity.PaymentStatus) error {
	err := c.sendStatus(ctx, id, status)
	if IsValidation(err) {
		return err
	}
	c.applyStatus(id, status)
	return err
}

func (c *PaymentClient) sendStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	req := &entity.UpdatePaymentStatusRequest{Status: status}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	current, err := c.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if !current.CanTransitionTo(status) {
		return newValidationError(fmt.Sprintf("payment status transition not allowed: %s -> %s", current, status))
	}

	_, err = c.transport.Send(ctx, http.MethodPut, c.basePath+"/"+id+"/status", req, nil)
	return err
}

// currentStatus берет статус платежа из кеша экрана, при промахе - с сервера
func (c *PaymentClient) currentStatus(ctx context.Context, id string) (entity.PaymentStatus, error) {
	if payment, ok := c.cache.Get(id); ok {
		return payment.Status, nil
	}
	payment, err := c.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

// applyStatus мутирует кешированный платеж; completedAt выставляется
// только для статуса completed (и снимается при любом другом)
func (c *PaymentClient) applyStatus(id string, status entity.PaymentStatus) {
	observedAt := c.now()
	c.cache.Patch(id, func(payment entity.PaymentTransaction) entity.PaymentTransaction {
		payment.Status = status
		payment.UpdatedAt = observedAt
		if status == entity.PaymentStatusCompleted {
			payment.CompletedAt = &observedAt
		} else {
			payment.CompletedAt = nil
		}
		return payment
	})
}

// Cached возвращает текущее содержимое кеша экрана
func (c *PaymentClient) Cached() []entity.PaymentTransaction {
	return c.cache.Items()
}

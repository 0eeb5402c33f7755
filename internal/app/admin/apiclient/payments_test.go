package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentCache() *cache.ViewCache[entity.PaymentTransaction] {
	return cache.NewViewCache(func(p entity.PaymentTransaction) string { return p.ID })
}

func paymentListServer(t *testing.T, statusHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			// Платежи приходят в конверте {transactions: [...], total}
			w.Write([]byte(`{"transactions":[{"id":"t1","status":"pending","amount":25.5,"paymentProvider":"paypal"}],"total":1}`))
			return
		}
		statusHandler(w, r)
	}))
}

// ===================== PaymentClient UpdateStatus Tests =====================

func TestPaymentClient_UpdateStatus_StrictModeOnFailure(t *testing.T) {
	server := paymentListServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"payment provider down"}`))
	})
	defer server.Close()

	vc := newPaymentCache()
	client := NewPaymentClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.UpdateStatus(context.Background(), "t1", entity.PaymentStatusCompleted)

	// Режим по умолчанию строгий: сервер упал - кеш не тронут
	require.Error(t, err)
	payment, ok := vc.Get("t1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.CompletedAt)
}

func TestPaymentClient_UpdateStatus_Success(t *testing.T) {
	server := paymentListServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/t1/status", r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	})
	defer server.Close()

	vc := newPaymentCache()
	client := NewPaymentClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, client.UpdateStatus(context.Background(), "t1", entity.PaymentStatusCompleted))

	payment, ok := vc.Get("t1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	// Инвариант: completedAt выставлен тогда и только тогда,
	// когда статус completed
	assert.NotNil(t, payment.CompletedAt)
}

func TestPaymentClient_UpdateStatusOptimistic_PatchesCacheDespiteFailure(t *testing.T) {
	server := paymentListServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	defer server.Close()

	vc := newPaymentCache()
	client := NewPaymentClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.UpdateStatusOptimistic(context.Background(), "t1", entity.PaymentStatusCancelled)

	// Lenient режим по явной просьбе вызывающего: кеш мутирован,
	// но ошибка все равно возвращена - расхождение с сервером видно
	require.Error(t, err)
	payment, ok := vc.Get("t1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentStatusCancelled, payment.Status)
	assert.Nil(t, payment.CompletedAt)
}

func TestPaymentClient_UpdateStatus_TerminalTransitionRejected(t *testing.T) {
	var statusCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"transactions":[{"id":"t1","status":"failed"}]}`))
			return
		}
		statusCalled = true
	}))
	defer server.Close()

	vc := newPaymentCache()
	client := NewPaymentClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.UpdateStatus(context.Background(), "t1", entity.PaymentStatusCompleted)

	assert.True(t, IsValidation(err))
	assert.False(t, statusCalled)
}

func TestPaymentClient_UpdateStatusOptimistic_ValidationDoesNotMutateCache(t *testing.T) {
	var statusCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"transactions":[{"id":"t1","status":"failed"}]}`))
			return
		}
		statusCalled = true
	}))
	defer server.Close()

	vc := newPaymentCache()
	client := NewPaymentClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.UpdateStatusOptimistic(context.Background(), "t1", entity.PaymentStatusCompleted)

	// Lenient режим прощает только упавший ЗАПРОС. Переход из терминального
	// статуса отклонен локально, запрос не отправлялся - кеш не трогается
	require.True(t, IsValidation(err))
	assert.False(t, statusCalled)
	payment, ok := vc.Get("t1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
}

func TestPaymentClient_UpdateStatus_CacheMissChecksServerStatus(t *testing.T) {
	var statusCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			assert.Equal(t, "/payments/t1", r.URL.Path)
			w.Write([]byte(`{"id":"t1","status":"failed","amount":25.5}`))
			return
		}
		statusCalled = true
	}))
	defer server.Close()

	// Кеш пуст: state machine все равно применяется - текущий статус
	// запрашивается с сервера, как у заказов
	client := NewPaymentClient(NewTransport(server.URL, 10), newPaymentCache())

	err := client.UpdateStatus(context.Background(), "t1", entity.PaymentStatusCompleted)

	assert.True(t, IsValidation(err))
	assert.False(t, statusCalled)
}

package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderCache() *cache.ViewCache[entity.Order] {
	return cache.NewViewCache(func(o entity.Order) string { return o.ID })
}

// ===================== OrderClient List Tests =====================

func TestOrderClient_List_KeyedWrapper(t *testing.T) {
	// Backend отвечает {orders: [...], total: 12} - клиент должен отдать
	// три канонических заказа, а не UnrecognizedShape
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		w.Write([]byte(`{"orders":[
			{"id":"o1","status":"pending","quantity":1},
			{"id":"o2","status":"paid","quantity":2},
			{"id":"o3","status":"delivered","quantity":1}
		],"total":12}`))
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)

	orders, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, entity.OrderStatusPaid, orders[1].Status)
	// Кеш экрана перезаполнен результатом list
	assert.Equal(t, 3, vc.Len())
}

func TestOrderClient_List_UnrecognizedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weird":"payload"}`))
	}))
	defer server.Close()

	vc := newOrderCache()
	vc.Replace([]entity.Order{{ID: "stale"}})
	client := NewOrderClient(NewTransport(server.URL, 10), vc)

	orders, err := client.List(context.Background())

	// Неизвестный конверт - это не сетевая ошибка и не паника:
	// отдельный kind, пустой кеш
	require.Error(t, err)
	assert.True(t, IsUnrecognizedShape(err))
	assert.Nil(t, orders)
	assert.Equal(t, 0, vc.Len())
}

// ===================== UpdateStatus Tests =====================

func TestOrderClient_UpdateStatus_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"orders":[{"id":"o1","status":"pending","statusHistory":[{"status":"pending","timestamp":"2026-01-01T00:00:00Z"}]}]}`))
		case r.Method == http.MethodPut:
			assert.Equal(t, "/orders/o1/status", r.URL.Path)
			w.Write([]byte(`{"success":true}`))
		}
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	before := time.Now()
	err = client.UpdateStatus(context.Background(), "o1", entity.OrderStatusPaid, "manual confirm")
	require.NoError(t, err)

	order, ok := vc.Get("o1")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)

	// История append-only: последняя запись совпадает со статусом заказа
	// и проштампована временем наблюдения клиента
	require.Len(t, order.StatusHistory, 2)
	last := order.StatusHistory[len(order.StatusHistory)-1]
	assert.Equal(t, order.Status, last.Status)
	assert.Equal(t, "manual confirm", last.Note)
	assert.False(t, last.Timestamp.Before(before))
}

func TestOrderClient_UpdateStatus_ServerErrorDoesNotMutateCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"orders":[{"id":"o1","status":"pending"}]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.UpdateStatus(context.Background(), "o1", entity.OrderStatusCancelled, "")

	// Строгий режим по умолчанию: упавшая мутация не оставляет
	// локальных следов
	require.Error(t, err)
	order, ok := vc.Get("o1")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Empty(t, order.StatusHistory)
}

func TestOrderClient_UpdateStatus_InvalidTransitionRejectedLocally(t *testing.T) {
	var serverCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"orders":[{"id":"o1","status":"pending"}]}`))
			return
		}
		serverCalled = true
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	// pending -> delivered минует paid и запрещен state machine
	err = client.UpdateStatus(context.Background(), "o1", entity.OrderStatusDelivered, "")

	assert.True(t, IsValidation(err))
	assert.False(t, serverCalled)
}

// ===================== Fulfill Tests =====================

func TestOrderClient_Fulfill_Success(t *testing.T) {
	var fulfillBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"orders":[{"id":"o1","status":"paid"}]}`))
			return
		}
		assert.Equal(t, "/orders/o1/fulfill", r.URL.Path)
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		fulfillBody = string(buf)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	err = client.Fulfill(context.Background(), "o1", []string{"KEY-111", "KEY-222"}, "issued manually")
	require.NoError(t, err)

	assert.JSONEq(t, `{"content":["KEY-111","KEY-222"],"note":"issued manually"}`, fulfillBody)

	order, ok := vc.Get("o1")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	assert.Equal(t, []string{"KEY-111", "KEY-222"}, order.DeliveredContent)
	require.NotEmpty(t, order.StatusHistory)
	assert.Equal(t, order.Status, order.StatusHistory[len(order.StatusHistory)-1].Status)
	require.NotNil(t, order.CompletedAt)
}

func TestOrderClient_Fulfill_TerminalOrderRejected(t *testing.T) {
	var serverCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"orders":[
				{"id":"done","status":"delivered"},
				{"id":"gone","status":"cancelled"}
			]}`))
			return
		}
		serverCalled = true
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	for _, id := range []string{"done", "gone"} {
		err := client.Fulfill(context.Background(), id, []string{"KEY"}, "")
		assert.True(t, IsValidation(err), "fulfill of terminal order %s must be rejected", id)
	}
	assert.False(t, serverCalled)
}

func TestOrderClient_Fulfill_EmptyContentRejected(t *testing.T) {
	client := NewOrderClient(NewTransport("http://localhost:1", 10), newOrderCache())

	err := client.Fulfill(context.Background(), "o1", nil, "")

	assert.True(t, IsValidation(err))
}

// ===================== Status History Invariant =====================

func TestOrderClient_StatusHistoryFollowsTransitions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"orders":[{"id":"o1","status":"pending","statusHistory":[{"status":"pending","timestamp":"2026-01-01T00:00:00Z"}]}]}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	vc := newOrderCache()
	client := NewOrderClient(NewTransport(server.URL, 10), vc)
	_, err := client.List(context.Background())
	require.NoError(t, err)

	transitions := []entity.OrderStatus{entity.OrderStatusPaid, entity.OrderStatusCompleted}
	for _, status := range transitions {
		require.NoError(t, client.UpdateStatus(context.Background(), "o1", status, ""))

		order, ok := vc.Get("o1")
		require.True(t, ok)
		// Инвариант: последняя запись истории всегда равна текущему статусу
		assert.Equal(t, order.Status, order.StatusHistory[len(order.StatusHistory)-1].Status)
	}

	order, _ := vc.Get("o1")
	assert.Len(t, order.StatusHistory, 3) // pending + два перехода, только append
}

// ===================== Order Type Canonicalization =====================

func TestOrderClient_List_MissingTypeDefaultsToPurchase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Старый деплой не отдает поле type
		w.Write([]byte(`{"orders":[
			{"id":"o1","status":"pending"},
			{"id":"o2","status":"paid","type":"preorder"}
		]}`))
	}))
	defer server.Close()

	client := NewOrderClient(NewTransport(server.URL, 10), newOrderCache())

	orders, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, entity.OrderTypePurchase, orders[0].Type)
	// Явно присланный тип не перетирается
	assert.Equal(t, entity.OrderTypePreorder, orders[1].Type)
}

package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================== CategoryClient Tests =====================

func TestCategoryClient_Create_RequiresName(t *testing.T) {
	var serverCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverCalled = true
	}))
	defer server.Close()

	client := NewCategoryClient(NewTransport(server.URL, 10), cache.NewViewCache(func(c entity.Category) string { return c.ID }))

	_, err := client.Create(context.Background(), &entity.CreateCategoryRequest{Description: "no name"})

	assert.True(t, IsValidation(err))
	assert.False(t, serverCalled)
}

func TestCategoryClient_ListAndUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":"c1","name":"VPN","sortOrder":1,"isActive":true}]}`))
		case http.MethodPut:
			assert.Equal(t, "/categories/c1", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			// Отправляются только измененные поля
			assert.JSONEq(t, `{"name":"VPN Keys"}`, string(body))
			w.Write([]byte(`{"id":"c1","name":"VPN Keys","sortOrder":1,"isActive":true}`))
		}
	}))
	defer server.Close()

	vc := cache.NewViewCache(func(c entity.Category) string { return c.ID })
	client := NewCategoryClient(NewTransport(server.URL, 10), vc)

	categories, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)

	name := "VPN Keys"
	updated, err := client.Update(context.Background(), "c1", &entity.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "VPN Keys", updated.Name)

	cached, ok := vc.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "VPN Keys", cached.Name)
}

// ===================== UserClient Tests =====================

func TestUserClient_SendMessage(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewUserClient(NewTransport(server.URL, 10), cache.NewViewCache(func(u entity.User) string { return u.ID }))

	err := client.SendMessage(context.Background(), "u1", "your order is ready")

	require.NoError(t, err)
	assert.Equal(t, "/users/u1/send-message", gotPath)
	assert.JSONEq(t, `{"message":"your order is ready"}`, gotBody)
}

func TestUserClient_SendMessage_EmptyMessageRejected(t *testing.T) {
	client := NewUserClient(NewTransport("http://localhost:1", 10), cache.NewViewCache(func(u entity.User) string { return u.ID }))

	err := client.SendMessage(context.Background(), "u1", "")

	assert.True(t, IsValidation(err))
}

func TestUserClient_Create_RequiresTelegramID(t *testing.T) {
	client := NewUserClient(NewTransport("http://localhost:1", 10), cache.NewViewCache(func(u entity.User) string { return u.ID }))

	_, err := client.Create(context.Background(), &entity.CreateUserRequest{Username: "ghost"})

	assert.True(t, IsValidation(err))
}

// ===================== NotificationClient Tests =====================

func TestNotificationClient_Create_AudienceInvariant(t *testing.T) {
	var sentBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		sentBody = string(body)
		w.Write([]byte(`{"id":"n1","title":"t","message":"m","audience":"all","status":"draft"}`))
	}))
	defer server.Close()

	client := NewNotificationClient(NewTransport(server.URL, 10), cache.NewViewCache(func(n entity.Notification) string { return n.ID }))

	// specific_users без целей - ошибка до похода в сеть
	_, err := client.Create(context.Background(), &entity.CreateNotificationRequest{
		Title:    "t",
		Message:  "m",
		Audience: entity.AudienceSpecificUsers,
	})
	assert.True(t, IsValidation(err))

	// audience=all не отправляет targetUserIds вовсе
	_, err = client.Create(context.Background(), &entity.CreateNotificationRequest{
		Title:         "t",
		Message:       "m",
		Audience:      entity.AudienceAll,
		TargetUserIDs: []string{"u1"},
	})
	require.NoError(t, err)
	assert.NotContains(t, sentBody, "targetUserIds")
}

func TestNotificationClient_Delete_RemovesFromCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	vc := cache.NewViewCache(func(n entity.Notification) string { return n.ID })
	vc.Replace([]entity.Notification{{ID: "n1"}, {ID: "n2"}})
	client := NewNotificationClient(NewTransport(server.URL, 10), vc)

	require.NoError(t, client.Delete(context.Background(), "n1"))

	assert.Equal(t, 1, vc.Len())
	_, ok := vc.Get("n1")
	assert.False(t, ok)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"storeadmin/internal/app/admin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===================== Dashboard Tests =====================

func TestGetDashboard_Success(t *testing.T) {
	// Arrange
	router, tm := newTestRouter()
	tm.dashboard.On("Load", mock.Anything).Return(&entity.DashboardSnapshot{
		Users:       []entity.User{{ID: "u1"}},
		Stats:       entity.DashboardStats{TotalUsers: 1},
		GeneratedAt: time.Now(),
	}, nil)

	// Act
	w := doRequest(router, http.MethodGet, "/api/dashboard", "")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Snapshot-Stale"))

	var snapshot entity.DashboardSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 1, snapshot.Stats.TotalUsers)
}

func TestGetDashboard_StaleFallback(t *testing.T) {
	// Arrange: живая загрузка падает, но есть прогретый снапшот
	router, tm := newTestRouter()
	stale := &entity.DashboardSnapshot{
		Stats:       entity.DashboardStats{TotalOrders: 7},
		GeneratedAt: time.Now().Add(-time.Minute),
	}
	tm.dashboard.On("Load", mock.Anything).Return(nil, errors.New("failed to load [payments]: HTTP error 500"))
	tm.dashboard.On("Snapshot").Return(stale, true)

	// Act
	w := doRequest(router, http.MethodGet, "/api/dashboard", "")

	// Assert: устаревший снапшот отдается с пометкой
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Snapshot-Stale"))

	var snapshot entity.DashboardSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 7, snapshot.Stats.TotalOrders)
}

func TestGetDashboard_NoFallback(t *testing.T) {
	// Arrange: загрузка падает, прогретого снапшота нет
	router, tm := newTestRouter()
	tm.dashboard.On("Load", mock.Anything).Return(nil, errors.New("failed to load [users, orders]: connection refused"))
	tm.dashboard.On("Snapshot").Return(nil, false)

	// Act
	w := doRequest(router, http.MethodGet, "/api/dashboard", "")

	// Assert: нетипизированная ошибка агрегата отдается как internal
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal", resp.Error)
	assert.Contains(t, resp.Message, "users")
}

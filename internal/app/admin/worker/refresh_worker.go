package worker

import (
	"context"

	"storeadmin/internal/app/admin/service"
	"storeadmin/pkg/logger"
	"storeadmin/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// RefreshWorker по расписанию прогревает dashboard снапшот, чтобы главный
// экран имел fallback при недоступном storefront API. Сбои логируются
// и не фатальны - следующий тик попробует снова
type RefreshWorker struct {
	cron      *cron.Cron
	dashboard service.DashboardLoader
}

func NewRefreshWorker(dashboard service.DashboardLoader) *RefreshWorker {
	return &RefreshWorker{
		cron:      cron.New(),
		dashboard: dashboard,
	}
}

// Start регистрирует задачу и запускает планировщик.
// Пустое расписание отключает фоновое обновление
func (w *RefreshWorker) Start(ctx context.Context, schedule string) error {
	if schedule == "" {
		logger.Info().Msg("Dashboard refresh disabled by config")
		return nil
	}

	_, err := w.cron.AddFunc(schedule, func() {
		w.refresh(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("Dashboard refresh scheduler started")

	// Первичный прогрев, не дожидаясь первого тика
	w.refresh(ctx)
	return nil
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	_, err := w.dashboard.Load(ctx)
	metrics.RecordDashboardRefresh("storeadmin", "cron", err)
	if err != nil {
		logger.Warn().Err(err).Msg("Dashboard refresh failed")
		return
	}
	logger.Debug().Msg("Dashboard snapshot refreshed")
}

// Stop останавливает планировщик, дожидаясь выполняющихся задач
func (w *RefreshWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Dashboard refresh scheduler stopped")
}

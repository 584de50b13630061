package exports

import (
	"context"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically archives the full merge spreadsheet. Only the instance
// holding the leader lock runs a given tick.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	exportUsecase contracts.ExportUsecase
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, exportUsecase contracts.ExportUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, exportUsecase: exportUsecase}
}

// Start schedules the archive job. An invalid spec is returned and nothing runs.
func (w *Worker) Start(ctx context.Context) error {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Export.ArchiveCronSpec
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Error("exports.Worker.Start invalid cron spec",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		w.cancel()
		return err
	}
	c.Start()
	w.cron = c

	w.log.Info("exports.Worker.Start scheduled export archive",
		zap.String(constvars.LoggingCronSpecKey, spec),
	)
	return nil
}

// Stop waits for a running archive to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	requestID := utils.GenerateRequestID()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	ttl := time.Duration(w.cfg.Export.ArchiveLockTTLInMinutes) * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.ExportArchiveLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("exports.Worker.runOnce leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("exports.Worker.runOnce leader lock held by another instance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.ExportArchiveLeaderLockKey, token); err != nil {
			w.log.Warn("exports.Worker.runOnce failed to release leader lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(w.cfg.Export.ArchiveRunTimeoutInSeconds)*time.Second)
	defer cancel()

	_ = utils.LogOperation(runCtx, w.log, "exports.Worker.archive", func(ctx context.Context) error {
		_, err := w.exportUsecase.ArchiveSpreadsheet(ctx)
		return err
	})
}

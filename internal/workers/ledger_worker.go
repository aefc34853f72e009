package workers

import (
	"context"
	"time"

	"servhub_backend/internal/logger"
	"servhub_backend/internal/repositories"
)

// LedgerWorker чистит журнал отозванных токенов.
// Запись нужна только пока жив сам токен: после истечения срока подпись
// и так отбраковывает его, поэтому записи старше expires_at удаляются.
type LedgerWorker struct {
	ledger   repositories.InvalidatedTokenRepository
	interval time.Duration
}

func NewLedgerWorker(ledger repositories.InvalidatedTokenRepository) *LedgerWorker {
	return &LedgerWorker{
		ledger:   ledger,
		interval: time.Hour,
	}
}

// Start запускает фоновую чистку до отмены контекста
func (w *LedgerWorker) Start(ctx context.Context) {
	go w.pruneLoop(ctx)
}

func (w *LedgerWorker) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("ledger worker stopped")
			return
		case <-ticker.C:
			removed, err := w.ledger.DeleteExpired()
			if err != nil {
				logger.WorkerLog("ledger", "prune expired tokens", err)
			} else if removed > 0 {
				logger.Info("pruned expired invalidated tokens", "removed", removed)
			}
		}
	}
}

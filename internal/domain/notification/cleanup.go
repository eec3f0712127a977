package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CleanupService prunes read notifications past their retention.
type CleanupService struct {
	repo Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCleanupService(repo Repository, log *zap.Logger) *CleanupService {
	return &CleanupService{repo: repo, log: log, now: time.Now}
}

// Run deletes read notifications created more than retention ago.
func (c *CleanupService) Run(ctx context.Context, retention time.Duration) (int64, error) {
	start := c.now()
	cutoff := start.Add(-retention)

	deleted, err := c.repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		c.log.Error("notification cleanup failed", zap.Error(err))
		return 0, err
	}

	c.log.Info("notification cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
		zap.Duration("took", time.Since(start)),
	)
	return deleted, nil
}

// Schedule runs cleanup every interval until ctx is done.
func (c *CleanupService) Schedule(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.Run(ctx, retention)
		case <-ctx.Done():
			c.log.Info("scheduled notification cleanup stopped")
			return
		}
	}
}

package notify

import (
	"context"
	"sync"
	"time"

	"dayflow/pkg/logger"

	"go.uber.org/zap"
)

// Async delivers notices on a background goroutine so the decision request
// returns without waiting on SMTP. Failures are logged, not returned.
type Async struct {
	next    Notifier
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsync(next Notifier, timeout time.Duration) *Async {
	return &Async{next: next, timeout: timeout}
}

func (a *Async) LeaveDecided(ctx context.Context, notice LeaveNotice) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()
		if err := a.next.LeaveDecided(sendCtx, notice); err != nil {
			logger.Logger.Warn("leave notification failed", zap.String("to", notice.To), zap.Error(err))
		}
	}()
	return nil
}

// Wait blocks until every queued notice has been attempted.
func (a *Async) Wait() {
	a.wg.Wait()
}

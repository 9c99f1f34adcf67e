// Package decorator shows how behaviour can be added to an
// operation by wrapping it with a type that implements the same
// interface.
package decorator

import (
	"context"
	"time"

	"github.com/kay64/computer-science/logs"
)

// Waiter blocks for a period of time
type Waiter interface {
	// Wait blocks for d or until ctx is done, in which case the
	// context error is returned
	Wait(ctx context.Context, d time.Duration) error
}

// SimpleWaiter waits using a timer
type SimpleWaiter struct{}

// Wait implementation of Waiter for SimpleWaiter
func (SimpleWaiter) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LoggingWaiter decorates a Waiter by logging how long each
// wait actually took
type LoggingWaiter struct {
	original Waiter
	logger   logs.Logger
}

// Decorate wraps waiter so that every wait is logged
func Decorate(waiter Waiter, logger logs.Logger) *LoggingWaiter {
	return &LoggingWaiter{
		original: waiter,
		logger:   logger.ForClass("decorator", "LoggingWaiter"),
	}
}

// Wait implementation of Waiter for LoggingWaiter
func (w *LoggingWaiter) Wait(ctx context.Context, d time.Duration) error {
	return Timed(ctx, w.logger, "wait", func() error {
		return w.original.Wait(ctx, d)
	})
}

// Timed runs fn and logs the time it took together with the
// error it returned, if any
func Timed(ctx context.Context, logger logs.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	fields := logs.MapFields{
		"operation": name,
		"elapsed":   elapsed.String(),
	}

	if err != nil {
		fields.Add("err", err.Error())
		logger.Warn(ctx, "operation failed", fields)
	} else {
		logger.Info(ctx, "operation completed", fields)
	}

	return err
}

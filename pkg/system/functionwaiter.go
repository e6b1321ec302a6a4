package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// FunctionWaiter calls Handler until it reports true, sleeping Delay between
// attempts. A MaxAttempts of zero means no attempt limit; the context is the
// only thing that stops the wait in that case.
type FunctionWaiter struct {
	Name        string
	MaxAttempts int
	Delay       time.Duration
	Handler     func(ctx context.Context) (bool, error)
}

// ErrMaxAttempts is returned when the handler never reported true within
// MaxAttempts calls.
var ErrMaxAttempts = errors.New("max attempts reached")

func (waiter *FunctionWaiter) Wait(ctx context.Context) error {
	currentAttempts := 0

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		result, err := waiter.Handler(ctx)
		if err != nil {
			return err
		}
		if result {
			return nil
		}

		currentAttempts++
		if waiter.MaxAttempts > 0 && currentAttempts >= waiter.MaxAttempts {
			log.Ctx(ctx).Warn().Str("name", waiter.Name).Int("max", waiter.MaxAttempts).Msg("max attempts reached")
			return fmt.Errorf("%s: %w: %d", waiter.Name, ErrMaxAttempts, waiter.MaxAttempts)
		}

		log.Ctx(ctx).Trace().Str("name", waiter.Name).Int("attempt", currentAttempts).Dur("delay", waiter.Delay).Msg("waiting")
		timer := time.NewTimer(waiter.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

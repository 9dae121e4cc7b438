package internal

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
)

// NewBackoff returns the backoff used by hosts polling a PHY for completion of
// self-clearing operations. IEEE 802.3 allows a PHY up to 500ms to leave reset.
func NewBackoff() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    time.Millisecond,
		Max:    50 * time.Millisecond,
		Factor: 2,
	}
}

// PollUntil calls cond until it returns true, an error, or ctx is done.
// Sleeps between calls follow b, which is reset before returning.
func PollUntil(ctx context.Context, b *backoff.Backoff, cond func() (bool, error)) error {
	defer b.Reset()
	for {
		done, err := cond()
		if err != nil {
			return err
		} else if done {
			return nil
		}
		t := time.NewTimer(b.Duration())
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

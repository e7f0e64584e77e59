package logic

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSearchCancelled wraps a context cancellation/deadline observed
// between search steps, distinguishing "ran out of external budget"
// from a genuine (false, nil) not-provable result. errors.Is(err,
// ErrSearchCancelled) and errors.Is(err, cause) (e.g. context.Canceled
// or context.DeadlineExceeded) both hold for the error wrapCancellation
// returns.
var ErrSearchCancelled = errors.New("logic: proof search cancelled")

func wrapCancellation(cause error) error {
	return fmt.Errorf("%w: %w", ErrSearchCancelled, cause)
}

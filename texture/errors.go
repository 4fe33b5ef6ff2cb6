package texture

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/richinsley/texfmt/log"
)

var logger = log.New("texture")

var (
	// ErrUnsupported marks caller supplied data the registry cannot represent,
	// e.g. an image with five channels. Callers are expected to recover.
	ErrUnsupported = errors.New("unsupported texture input")

	// ErrInvariant marks an enumeration value outside its defined set.
	// It always indicates a programming error.
	ErrInvariant = errors.New("texture invariant violated")
)

// InvariantError reports an undefined enumeration value reaching a derivation.
type InvariantError struct {
	Kind  string
	Value int64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: unknown %s 0x%04X", ErrInvariant, e.Kind, e.Value)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

var strict atomic.Bool

// SetStrict selects what happens on an invariant violation. When enabled the
// violation panics after being logged; otherwise the derivation logs it and
// returns its zero value together with the error.
func SetStrict(enabled bool) {
	strict.Store(enabled)
}

// Strict reports the current invariant policy.
func Strict() bool {
	return strict.Load()
}

func invariantViolation(kind string, value int64) error {
	err := &InvariantError{Kind: kind, Value: value}
	logger.Error(err)
	if strict.Load() {
		panic(err)
	}
	return err
}

func unsupportedChannels(numChannels int) error {
	logger.Warningf("Unsupported texture format with %d channels", numChannels)
	return fmt.Errorf("%w: %d channels", ErrUnsupported, numChannels)
}

package zrsa

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults used by DefaultConfig.
const (
	DefaultIndexOffset      = 1000
	DefaultExponentBase     = 23
	DefaultMaxExponentSteps = 1024
)

// Config controls key generation.
type Config struct {
	// PrimeBound is the sieve bound for the table built by NewDefaultGenerator.
	PrimeBound int `validate:"gte=2"`
	// IndexOffset skips the smallest primes of the table when sampling p and q.
	IndexOffset int `validate:"gte=0"`
	// ExponentBase is where the public exponent search starts.
	ExponentBase int64 `validate:"gte=3"`
	// MaxExponentSteps caps the number of increments of the exponent search.
	MaxExponentSteps int `validate:"gte=1"`
}

// DefaultConfig mirrors the classic parameters: primes below 50000, skipping
// the first 1000, with e searched upward from 23.
func DefaultConfig() Config {
	return Config{
		PrimeBound:       DefaultPrimeBound,
		IndexOffset:      DefaultIndexOffset,
		ExponentBase:     DefaultExponentBase,
		MaxExponentSteps: DefaultMaxExponentSteps,
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// checkPool rejects tables that cannot yield two distinct primes at or above
// the index offset.
func (c Config) checkPool(table *PrimeTable) error {
	if table.Len()-c.IndexOffset < 2 {
		return fmt.Errorf("%w: %d primes below %d, need at least %d",
			ErrInsufficientPrimePool, table.Len(), table.Bound(), c.IndexOffset+2)
	}
	return nil
}

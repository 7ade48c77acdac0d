package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeySettings are the generator parameters exposed as flags.
type KeySettings struct {
	PrimeBound       int   `validate:"gte=2,lte=1000000"`
	IndexOffset      int   `validate:"gte=0,ltfield=PrimeBound"`
	ExponentBase     int64 `validate:"gte=3"`
	MaxExponentSteps int   `validate:"gte=1"`
}

func (s *KeySettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeySettings: %w", err)
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const DefaultHistoryPath = "./zrsa_history.db"

// HistorySettings controls the SQLite transcript store. An empty Path
// disables recording.
type HistorySettings struct {
	Path  string
	Limit int `validate:"gte=0,lte=10000"`
}

// Enabled reports whether rounds should be recorded.
func (s *HistorySettings) Enabled() bool {
	return s.Path != ""
}

func (s *HistorySettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for HistorySettings: %w", err)
	}
	return nil
}

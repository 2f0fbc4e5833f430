package populate

import "github.com/localehub/catalog-backend/internal/domain"

// Defaults applied by Normalize.
const (
	DefaultBatchSize     = 1000
	DefaultProgressEvery = 10
)

// Config holds the parameters of one pipeline run.
type Config struct {
	// TargetCount is the number of synthetic translations to insert.
	TargetCount int

	// BatchSize is the number of records per transaction. Default 1000.
	BatchSize int

	// StartAt offsets the key sequence, letting consecutive runs against
	// one database produce disjoint keys.
	StartAt int

	// ProgressEvery logs progress every N batches. Default 10.
	ProgressEvery int

	// Seed drives the random generator. Two runs with the same seed and
	// StartAt produce identical records.
	Seed int64
}

// Validate checks the run parameters.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if c.TargetCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must be positive"})
	}
	if c.BatchSize < 0 {
		errs = append(errs, domain.FieldError{Field: "batch_size", Message: "must not be negative"})
	}
	if c.StartAt < 0 {
		errs = append(errs, domain.FieldError{Field: "start_at", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Normalize applies defaults.
func (c *Config) Normalize() {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = DefaultProgressEvery
	}
}

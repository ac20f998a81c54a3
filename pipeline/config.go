package pipeline

import (
	"errors"
	"fmt"
	"github.com/dasnellings/fqclean/dedup"
	"github.com/dasnellings/fqclean/filter"
	"github.com/dasnellings/fqclean/trim"
)

// ErrConfig is wrapped by every error returned from Config.Validate.
var ErrConfig = errors.New("invalid configuration")

// Config is resolved once before a run and is not modified by it.
type Config struct {
	TrimStart        int     // bases removed from the 5' end
	TrimEnd          int     // exclusive end of the kept window, 0 for no limit
	QualityThreshold uint8   // quality bytes <= this are bad, 1-100
	BadBaseLimit     float32 // reads with bad bases >= limit*length are dropped, (0,1)
	MaxN             int     // reads with more N than this are dropped
	BaseBudget       int     // stop once emitted mate 1 bases exceed this, 0 for no limit
	Deduplicate      bool    // paired only
	TruncateOnly     bool    // trim and budget only, no filtering

	// Fingerprint used for deduplication. Nil selects dedup.XXHash.
	Fingerprint dedup.Fingerprint

	// ProgressInterval logs a line every N reads when > 0.
	ProgressInterval int
}

// DefaultConfig returns the default filtering thresholds.
func DefaultConfig() Config {
	return Config{
		QualityThreshold: 55,
		BadBaseLimit:     0.2,
		MaxN:             10,
	}
}

// Validate checks value ranges. Deduplication requires paired input.
func (c Config) Validate(paired bool) error {
	if c.QualityThreshold < 1 || c.QualityThreshold > 100 {
		return fmt.Errorf("%w: quality threshold must be in [1,100], got %d", ErrConfig, c.QualityThreshold)
	}
	if !(c.BadBaseLimit > 0 && c.BadBaseLimit < 1) {
		return fmt.Errorf("%w: bad base limit must be in (0,1), got %g", ErrConfig, c.BadBaseLimit)
	}
	if c.MaxN < 0 {
		return fmt.Errorf("%w: max N count must not be negative, got %d", ErrConfig, c.MaxN)
	}
	if c.BaseBudget < 0 {
		return fmt.Errorf("%w: base budget must not be negative, got %d", ErrConfig, c.BaseBudget)
	}
	if _, err := trim.NewWindow(c.TrimStart, c.TrimEnd); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Deduplicate && !paired {
		return fmt.Errorf("%w: deduplication requires paired input", ErrConfig)
	}
	return nil
}

func (c Config) criteria() filter.Criteria {
	return filter.Criteria{
		QualityThreshold: c.QualityThreshold,
		BadBaseLimit:     c.BadBaseLimit,
		MaxN:             c.MaxN,
	}
}

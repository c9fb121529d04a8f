package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statistic is a computed, cacheable fact tied to a workspace. The stored
// Value is text; Type dictates display formatting only.
type Statistic struct {
	ID               uuid.UUID
	WorkspaceID      uuid.UUID
	Key              string
	Label            string
	Value            string
	Type             StatisticType
	Trend            *float64
	TrendDirection   *TrendDirection
	TargetValue      *string
	Progress         *int
	CacheDurationSec int
	LastCalculatedAt time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsStale reports whether the stored value is old enough to require
// recomputation. A zero cache duration means every read is stale,
// regardless of when the value was last calculated.
func (s Statistic) IsStale(now time.Time) bool {
	if s.CacheDurationSec == 0 {
		return true
	}
	age := now.Sub(s.LastCalculatedAt)
	return age > time.Duration(s.CacheDurationSec)*time.Second
}

// Validate checks structural invariants of the statistic definition,
// including consistency between Trend and TrendDirection.
func (s Statistic) Validate() error {
	var errs []FieldError

	if s.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if s.WorkspaceID == uuid.Nil {
		errs = append(errs, FieldError{Field: "workspace_id", Message: "required"})
	}
	if s.Key == "" {
		errs = append(errs, FieldError{Field: "key", Message: "required"})
	} else if len(s.Key) > 128 {
		errs = append(errs, FieldError{Field: "key", Message: "too long"})
	}
	if s.Label == "" {
		errs = append(errs, FieldError{Field: "label", Message: "required"})
	}
	if !s.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown statistic type"})
	}
	if s.CacheDurationSec < 0 {
		errs = append(errs, FieldError{Field: "cache_duration_seconds", Message: "must not be negative"})
	}
	if s.Progress != nil && (*s.Progress < 0 || *s.Progress > 100) {
		errs = append(errs, FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if err := validateTrend(s.Trend, s.TrendDirection); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// validateTrend enforces sign consistency: UP requires trend > 0,
// DOWN requires trend < 0, STABLE requires trend == 0 or absent.
func validateTrend(trend *float64, direction *TrendDirection) *FieldError {
	if direction == nil {
		return nil
	}
	if !direction.IsValid() {
		return &FieldError{Field: "trend_direction", Message: "unknown direction"}
	}
	if trend == nil {
		if *direction != TrendStable {
			return &FieldError{Field: "trend_direction", Message: "requires a trend delta"}
		}
		return nil
	}

	switch *direction {
	case TrendUp:
		if *trend <= 0 {
			return &FieldError{Field: "trend_direction", Message: "UP requires trend > 0"}
		}
	case TrendDown:
		if *trend >= 0 {
			return &FieldError{Field: "trend_direction", Message: "DOWN requires trend < 0"}
		}
	case TrendStable:
		if *trend != 0 {
			return &FieldError{Field: "trend_direction", Message: "STABLE requires trend == 0"}
		}
	}
	return nil
}

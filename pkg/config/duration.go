package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidatePositiveDuration validates that a duration is positive (greater than zero).
//
// Example:
//
//	if err := ValidatePositiveDuration(timeout); err != nil {
//	    return fmt.Errorf("invalid timeout: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange validates that a duration is within [min, max].
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}
	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}
	return nil
}

// ValidateIntRange validates that an integer is within [min, max].
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// CronParser accepts five-field expressions and descriptors such as "@every 1m" or "@hourly".
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronSchedule validates a cron expression with CronParser.
//
// Example:
//
//	ValidateCronSchedule("*/5 * * * *") // nil
//	ValidateCronSchedule("@every 30s")  // nil
//	ValidateCronSchedule("every minute") // error
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	if _, err := CronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/saint0x/letsflow/pkg/log"
)

const (
	// DefaultSpinBudget is how long the unbounded loop example counts.
	DefaultSpinBudget = 300 * time.Millisecond
	// MaxSpinBudget caps LETSFLOW_SPIN_BUDGET.
	MaxSpinBudget = 10 * time.Second
)

// Environment holds validated environment configuration
type Environment struct {
	Debug      bool
	NoColor    bool
	SpinBudget time.Duration
}

// Validate reads and checks the environment
func Validate(logger *log.Logger) (*Environment, error) {
	env := &Environment{
		Debug:      os.Getenv("DEBUG") == "true",
		NoColor:    os.Getenv("NO_COLOR") != "",
		SpinBudget: DefaultSpinBudget,
	}

	if raw := os.Getenv("LETSFLOW_SPIN_BUDGET"); raw != "" {
		budget, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LETSFLOW_SPIN_BUDGET %q: %w", raw, err)
		}
		if budget <= 0 || budget > MaxSpinBudget {
			return nil, fmt.Errorf("LETSFLOW_SPIN_BUDGET must be in (0, %s], got %s", MaxSpinBudget, budget)
		}
		env.SpinBudget = budget
	}

	logger.Debug("Environment: debug=%v no_color=%v spin_budget=%s", env.Debug, env.NoColor, env.SpinBudget)
	return env, nil
}

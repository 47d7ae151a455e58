package main

import (
	"os"

	"github.com/saint0x/letsflow/pkg/config"
	"github.com/saint0x/letsflow/pkg/log"
	"github.com/saint0x/letsflow/pkg/loops"
)

func main() {
	logger := log.New(os.Getenv("DEBUG") == "true")

	env, err := config.Validate(logger)
	if err != nil {
		logger.Error("Environment validation failed: %v", err)
		os.Exit(1)
	}

	prog := loops.New(logger, loops.WithSpinBudget(env.SpinBudget))
	if err := prog.Run(os.Stdout); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

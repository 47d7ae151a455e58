package main

import (
	"os"

	"github.com/saint0x/letsflow/pkg/conditionals"
	"github.com/saint0x/letsflow/pkg/config"
	"github.com/saint0x/letsflow/pkg/log"
)

func main() {
	logger := log.New(os.Getenv("DEBUG") == "true")

	if _, err := config.Validate(logger); err != nil {
		logger.Error("Environment validation failed: %v", err)
		os.Exit(1)
	}

	if err := conditionals.New(logger).Run(os.Stdout); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

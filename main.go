package main

import (
	"github.com/google/gops/agent"

	"juliaset/coordinator"
	"juliaset/misc"
)

func main() {
	parseArguments()
	misc.SetVerbose(verbose)
	logger := misc.NewLogger("JuliaSet")

	if gopsAgent {
		misc.CheckError(agent.Listen(agent.Options{}), logger)
		defer agent.Close()
	}

	s, err := loadSettings()
	misc.CheckError(err, logger)

	c, err := coordinator.NewCoordinator(s)
	misc.CheckError(err, logger)

	_, err = c.Run()
	misc.CheckError(err, logger)
}

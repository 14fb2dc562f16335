package main

import (
	"flag"
	"runtime"

	"juliaset/coordinator"
	"juliaset/julia"
)

var (
	gopsAgent, saveLog, serializeWrites, verbose bool
	generation, output, policy, settings         string
	threads, width                               int
)

func parseArguments() {
	flag.StringVar(&settings, "settings", "", "Settings file (json, yaml or toml)")
	flag.StringVar(&output, "output", "output.bmp", "Bitmap file to write")
	flag.IntVar(&width, "width", 3000, "Width of the image; the height follows the aspect ratio")
	flag.IntVar(&threads, "threads", runtime.NumCPU(), "Number of workers")
	flag.StringVar(&policy, "policy", string(julia.PowerPolicy), "Color policy: power or log")
	flag.StringVar(&generation, "generation", "band", "Row assignment: band or interleaved")
	flag.BoolVar(&serializeWrites, "serialize", false, "Guard grid writes with a mutex")
	flag.BoolVar(&saveLog, "log", false, "Record the run's log next to the output")
	flag.BoolVar(&verbose, "verbose", false, "Print debug messages")
	flag.BoolVar(&gopsAgent, "gops", false, "Start a gops diagnostics agent while rendering")

	flag.Parse()
}

// loadSettings starts from the settings file, or the defaults without one,
// and applies the flags that were given explicitly.
func loadSettings() (coordinator.Settings, error) {
	s := coordinator.DefaultSettings()
	if settings != "" {
		var err error
		if s, err = coordinator.LoadSettings(settings); err != nil {
			return s, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			s.OutputFile = output
		case "width":
			s.Julia.Width = width
			s.Julia.Height = 0
		case "threads":
			s.Threads = threads
		case "policy":
			s.Julia.Color.Policy = julia.ColorPolicy(policy)
		case "generation":
			s.TaskGeneration = generation
		case "log":
			s.SaveLog = saveLog
		case "serialize":
			s.SerializeWrites = serializeWrites
		}
	})
	return s, nil
}

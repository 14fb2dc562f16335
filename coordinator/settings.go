package coordinator

import (
	"fmt"
	"runtime"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/zeromicro/go-zero/core/conf"

	"juliaset/julia"
	"juliaset/misc"
	"juliaset/task"
)

// Settings describe one run: what to render, how to split the work and where
// to put the bitmap.
type Settings struct {
	generation task.Generation
	logger     bslogger.Logger
	remainder  task.Remainder

	Julia           julia.Settings `json:"Julia"`
	OutputFile      string         `json:"OutputFile,default=output.bmp"`
	Remainder       string         `json:"Remainder,default=absorb,options=absorb|truncate"`
	RunName         string         `json:"RunName,optional"`
	SaveLog         bool           `json:"SaveLog,optional"`
	SaveSettings    bool           `json:"SaveSettings,optional"`
	SerializeWrites bool           `json:"SerializeWrites,optional"`
	TaskGeneration  string         `json:"TaskGeneration,default=band,options=band|interleaved"`
	Threads         int            `json:"Threads,optional"`
}

// DefaultSettings uses one worker per CPU.
func DefaultSettings() Settings {
	return Settings{
		Julia:          julia.DefaultSettings(),
		OutputFile:     "output.bmp",
		Remainder:      "absorb",
		TaskGeneration: "band",
		Threads:        runtime.NumCPU(),
	}
}

// LoadSettings reads a JSON, YAML or TOML settings file. Missing keys take
// their defaults and a missing or zero Threads means one worker per CPU.
func LoadSettings(settingsFile string) (Settings, error) {
	var s Settings
	if err := conf.Load(settingsFile, &s); err != nil {
		return Settings{}, misc.ConfigurationError("load settings", "%s: %w", settingsFile, err)
	}
	if s.Threads == 0 {
		s.Threads = runtime.NumCPU()
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "{Coordinator "
	output += fmt.Sprintf("Run: %s ", s.RunName)
	output += fmt.Sprintf("Output: %s ", s.OutputFile)
	output += fmt.Sprintf("Threads: %d ", s.Threads)
	output += fmt.Sprintf("Generation: %s ", s.generation)
	output += fmt.Sprintf("Remainder: %s ", s.remainder)
	output += fmt.Sprintf("SerializeWrites: %t ", s.SerializeWrites)
	output += fmt.Sprintf("Julia: %s}", s.Julia.String())
	return output
}

// Verify rejects anything that would stop the run before it starts.
func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("CoordinatorSettings")

	if err := s.Julia.Verify(); err != nil {
		return err
	}
	if s.Threads < 1 {
		return misc.ConfigurationError("verify settings", "thread count must be at least 1, got %d", s.Threads)
	}
	if s.OutputFile == "" {
		return misc.ConfigurationError("verify settings", "no output file")
	}

	var err error
	if s.generation, err = task.ParseGeneration(s.TaskGeneration); err != nil {
		return err
	}
	if s.remainder, err = task.ParseRemainder(s.Remainder); err != nil {
		return err
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}

	if s.Threads > s.Julia.Height {
		s.logger.Warningf("%d threads for %d rows; some workers will have no rows", s.Threads, s.Julia.Height)
	}
	if s.generation == task.Band && s.remainder == task.Truncate && s.Julia.Height%s.Threads != 0 {
		s.logger.Warningf("The last %d rows are not assigned to any worker and keep the escape color", s.Julia.Height%s.Threads)
	}

	s.logger.Debug(s.String())
	return nil
}

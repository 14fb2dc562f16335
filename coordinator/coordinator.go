package coordinator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"

	"juliaset/bitmap"
	"juliaset/julia"
	"juliaset/misc"
	"juliaset/pixel"
	"juliaset/task"
	"juliaset/worker"
)

// Coordinator owns the pixel grid for one run. It starts the workers, waits
// for all of them and only then writes the bitmap.
type Coordinator struct {
	grid     *pixel.Grid
	julia    julia.Julia
	logger   bslogger.Logger
	settings Settings
	tasks    []task.Task
}

// Report summarizes a finished run.
type Report struct {
	Elapsed       time.Duration
	LogFile       string
	OutputFile    string
	PixelsColored int
	RowsProcessed int
	SettingsFile  string
	Threads       int
}

func NewCoordinator(settings Settings) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	j, err := julia.NewJulia(settings.Julia)
	if err != nil {
		return nil, err
	}
	tasks, err := task.Partition(settings.Julia.Height, settings.Threads, settings.generation, settings.remainder)
	if err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		grid:     pixel.NewGrid(settings.Julia.Width, settings.Julia.Height),
		julia:    j,
		logger:   misc.NewLogger("Coordinator"),
		settings: settings,
		tasks:    tasks,
	}
	return coordinator, nil
}

// Grid is the rendered image once Run has returned.
func (c *Coordinator) Grid() *pixel.Grid {
	return c.grid
}

func (c *Coordinator) Settings() Settings {
	return c.settings
}

// Run renders the image, writes it to the output file and, when asked, saves
// a copy of the settings and the run's log next to it.
func (c *Coordinator) Run() (report Report, err error) {
	report = Report{
		OutputFile: c.settings.OutputFile,
		Threads:    len(c.tasks),
	}

	if c.settings.SaveLog {
		// Create a log file to record the run
		report.LogFile = c.runFile(".log")
		var logFile *os.File
		if logFile, err = os.Create(report.LogFile); err != nil {
			return report, misc.IOError("create log", fmt.Errorf("unable to create file %s - %w", report.LogFile, err))
		}
		defer func() {
			if cerr := logFile.Close(); cerr != nil && err == nil {
				err = misc.IOError("close log", cerr)
			}
		}()
		c.logger = misc.NewFileLogger("Coordinator", logFile)
	}

	c.logger.Info("Generating Julia Set...")
	c.logger.Infof("Thread capacity: %d", report.Threads)
	c.logger.Debug(c.julia.Settings().String())

	var startTime = time.Now()

	c.grid.Fill(c.julia.EscapeColor())
	pool, err := worker.NewPool(c.julia, c.grid, c.settings.SerializeWrites)
	if err != nil {
		return report, misc.ResourceError("start workers", err)
	}
	stats, err := pool.Run(c.tasks)
	if err != nil {
		return report, misc.ResourceError("run workers", err)
	}
	report.PixelsColored = stats.PixelsColored
	report.RowsProcessed = stats.RowsProcessed

	report.Elapsed = time.Since(startTime)
	c.logger.Infof("Computing the Julia Set took %s", report.Elapsed)

	if err := bitmap.WriteFile(c.settings.OutputFile, c.grid); err != nil {
		return report, err
	}
	c.logger.Infof("Saved image to %s", c.settings.OutputFile)

	if c.settings.SaveSettings {
		report.SettingsFile, err = c.saveSettings()
		if err != nil {
			return report, err
		}
		c.logger.Infof("Saved settings to %s", report.SettingsFile)
	}

	return report, nil
}

// saveSettings copies the settings next to the output so the run can be
// repeated with -settings.
func (c *Coordinator) saveSettings() (string, error) {
	bytes, err := sonic.ConfigStd.MarshalIndent(c.settings, "", "  ")
	if err != nil {
		return "", misc.IOError("save settings", err)
	}

	path := c.runFile(".json")
	err = misc.WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(bytes)
		return err
	})
	return path, err
}

// runFile names a file of this run next to the output.
func (c *Coordinator) runFile(extension string) string {
	return filepath.Join(filepath.Dir(c.settings.OutputFile), c.settings.RunName+extension)
}

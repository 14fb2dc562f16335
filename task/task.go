package task

import (
	"fmt"

	"juliaset/misc"
)

const (
	Band Generation = iota
	Interleaved
)

// Generation selects how rows are dealt out to workers.
type Generation int

func (g Generation) String() string {
	return []string{
		"Band", "Interleaved",
	}[g]
}

// ParseGeneration accepts the names used in settings files and flags.
func ParseGeneration(name string) (Generation, error) {
	switch name {
	case "", "band":
		return Band, nil
	case "interleaved":
		return Interleaved, nil
	}
	return Band, misc.ConfigurationError("parse generation", "unknown task generation %q", name)
}

const (
	Absorb Remainder = iota
	Truncate
)

// Remainder decides what happens to the height%n rows that do not fit into
// n equal bands.
type Remainder int

func (r Remainder) String() string {
	return []string{
		"Absorb", "Truncate",
	}[r]
}

func ParseRemainder(name string) (Remainder, error) {
	switch name {
	case "", "absorb":
		return Absorb, nil
	case "truncate":
		return Truncate, nil
	}
	return Absorb, misc.ConfigurationError("parse remainder", "unknown remainder policy %q", name)
}

// Task is the set of rows Start, Start+Stride, ... below End owned by one
// worker.
type Task struct {
	ID     int
	Start  int
	End    int
	Stride int
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Rows: [%d, %d) ", t.Start, t.End)
	output += fmt.Sprintf("Stride: %d}", t.Stride)
	return output
}

// Rows returns the rows of the task in increasing order.
func (t *Task) Rows() []int {
	if t.Stride < 1 || t.End <= t.Start {
		return nil
	}
	rows := make([]int, 0, (t.End-t.Start+t.Stride-1)/t.Stride)
	for r := t.Start; r < t.End; r += t.Stride {
		rows = append(rows, r)
	}
	return rows
}

// RowCount is len(t.Rows()) without building the slice.
func (t *Task) RowCount() int {
	if t.Stride < 1 || t.End <= t.Start {
		return 0
	}
	return (t.End - t.Start + t.Stride - 1) / t.Stride
}

// Partition splits height rows into n tasks.
//
// Band task i covers [⌊height/n⌋·i, ⌊height/n⌋·(i+1)). Under Absorb the last
// band runs to height; under Truncate the rows past n·⌊height/n⌋ belong to no
// task. Interleaved task i owns the rows with row%n == i, which covers every
// row, so the remainder policy does not apply.
func Partition(height int, n int, generation Generation, remainder Remainder) ([]Task, error) {
	if n < 1 {
		return nil, misc.ConfigurationError("partition", "thread count must be at least 1, got %d", n)
	}
	if height < 0 {
		return nil, misc.ConfigurationError("partition", "height must not be negative, got %d", height)
	}

	tasks := make([]Task, n)
	switch generation {
	case Band:
		size := height / n
		for i := range tasks {
			tasks[i] = Task{ID: i, Start: size * i, End: size * (i + 1), Stride: 1}
		}
		if remainder == Absorb {
			tasks[n-1].End = height
		}
	case Interleaved:
		for i := range tasks {
			tasks[i] = Task{ID: i, Start: i, End: height, Stride: n}
		}
	default:
		return nil, misc.ConfigurationError("partition", "unknown task generation %d", generation)
	}
	return tasks, nil
}

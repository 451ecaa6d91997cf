package precheck

import (
	"context"
	"errors"
	"fmt"
)

// Defaults reproduce the launcher's original targets: the local Ollama
// daemon and the instruct model the report assistant runs against.
const (
	DefaultProcessName = "ollama"
	DefaultModel       = "qwen2.5:3b-instruct"
)

// DefaultListingCommand enumerates locally installed models.
var DefaultListingCommand = []string{"ollama", "list"}

// Failure kinds. All are fatal: the gate stops at the first one and the
// caller exits 1 without running the delegate.
var (
	ErrProcessMissing = errors.New("required process not running")
	ErrModelMissing   = errors.New("required model not installed")
)

// SnapshotFunc produces the process-table snapshot.
type SnapshotFunc func() (ProcessTable, error)

// ListingFunc produces the raw model listing output.
type ListingFunc func(ctx context.Context) (string, error)

// Result is one check outcome, suitable for both the human status lines
// and the structured doctor report.
type Result struct {
	Name   string `json:"name" yaml:"name"`
	OK     bool   `json:"ok" yaml:"ok"`
	Detail string `json:"detail" yaml:"detail"`
	Remedy string `json:"remedy,omitempty" yaml:"remedy,omitempty"`
}

// Checker gates execution behind two readiness conditions: the daemon
// process exists, and the required model appears in the listing. Checks
// run in fixed order (process first) and the gate stops at the first
// failure.
type Checker struct {
	ProcessName string
	Model       string

	// Snapshot and Listing default to the real OS queries; tests
	// substitute canned tables and output.
	Snapshot SnapshotFunc
	Listing  ListingFunc
}

// NewChecker creates a checker against the real process table and the
// default listing command.
func NewChecker(processName, model string) *Checker {
	return &Checker{
		ProcessName: processName,
		Model:       model,
		Snapshot:    Snapshot,
		Listing: func(ctx context.Context) (string, error) {
			return RunListing(ctx, DefaultListingCommand[0], DefaultListingCommand[1:]...)
		},
	}
}

// Gate runs the prechecks in order and returns the results of every
// check that executed. The error is nil only when the delegate may run;
// otherwise it wraps ErrProcessMissing, ErrModelMissing or
// ErrListingToolFailed. The listing check never runs after a failed
// process check.
func (c *Checker) Gate(ctx context.Context) ([]Result, error) {
	table, err := c.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read process table: %w", err)
	}

	proc := c.CheckProcess(table)
	results := []Result{proc}
	if !proc.OK {
		return results, fmt.Errorf("%w: %s", ErrProcessMissing, c.ProcessName)
	}

	output, err := c.Listing(ctx)
	if err != nil {
		results = append(results, Result{
			Name:   "model listing",
			Detail: err.Error(),
			Remedy: "check that the ollama CLI is installed and on PATH",
		})
		return results, err
	}

	model := c.CheckModel(output)
	results = append(results, model)
	if !model.OK {
		return results, fmt.Errorf("%w: %s", ErrModelMissing, c.Model)
	}
	return results, nil
}

// CheckProcess evaluates the process precheck against a snapshot.
func (c *Checker) CheckProcess(table ProcessTable) Result {
	r := Result{Name: "process"}
	if table.Contains(c.ProcessName) {
		r.OK = true
		r.Detail = fmt.Sprintf("%s is running", c.ProcessName)
		return r
	}
	r.Detail = fmt.Sprintf("%s is not running", c.ProcessName)
	r.Remedy = fmt.Sprintf("start it first, e.g.: %s serve", c.ProcessName)
	return r
}

// CheckModel evaluates the model precheck against captured listing output.
func (c *Checker) CheckModel(output string) Result {
	r := Result{Name: "model"}
	if ListingContains(output, c.Model) {
		r.OK = true
		r.Detail = fmt.Sprintf("%s is installed", c.Model)
		return r
	}
	r.Detail = fmt.Sprintf("%s not found in model listing", c.Model)
	r.Remedy = fmt.Sprintf("pull it with: ollama pull %s", c.Model)
	return r
}

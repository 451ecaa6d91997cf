package precheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessTable is a single snapshot of running process names. The gate
// takes one snapshot and queries it as a value, so both checks observe
// the same table.
type ProcessTable struct {
	names []string
}

// Snapshot reads the current OS process table once.
func Snapshot() (ProcessTable, error) {
	procs, err := process.Processes()
	if err != nil {
		return ProcessTable{}, fmt.Errorf("failed to read process table: %w", err)
	}

	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue // process exited mid-scan
		}
		names = append(names, name)
	}
	return ProcessTable{names: names}, nil
}

// NewProcessTable builds a table from explicit names. Used by tests and
// callers that already hold a snapshot.
func NewProcessTable(names ...string) ProcessTable {
	return ProcessTable{names: names}
}

// Contains reports whether a process with the given name is present.
// Matching is against the executable base name, exact or prefix, the
// same semantics pgrep gives for a bare pattern.
func (t ProcessTable) Contains(target string) bool {
	if target == "" {
		return false
	}
	for _, name := range t.names {
		base := filepath.Base(name)
		if base == target || strings.HasPrefix(base, target) {
			return true
		}
	}
	return false
}

// Len returns the number of processes in the snapshot.
func (t ProcessTable) Len() int {
	return len(t.names)
}

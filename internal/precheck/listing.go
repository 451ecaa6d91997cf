package precheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrListingToolFailed marks a listing command that could not run at all
// (not installed, not on PATH, or exited non-zero). This is deliberately
// distinct from "model missing": a broken tool must not masquerade as an
// absent model, the remediation is different.
var ErrListingToolFailed = errors.New("model listing command failed")

// RunListing invokes the listing command and returns its captured stdout.
func RunListing(ctx context.Context, command string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s", ErrListingToolFailed, detail)
	}
	return stdout.String(), nil
}

// ListingContains reports whether the pattern appears anywhere in the
// captured listing output.
func ListingContains(output, pattern string) bool {
	if pattern == "" {
		return false
	}
	return strings.Contains(output, pattern)
}

// Model is one row of the listing output.
type Model struct {
	Name     string `json:"name" yaml:"name"`
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
	Modified string `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// ParseListing parses "ollama list" style output: a NAME ID SIZE MODIFIED
// header followed by one row per model, columns separated by runs of
// whitespace. SIZE spans two fields ("3.3 GB"); MODIFIED is the rest of
// the line.
func ParseListing(output string) []Model {
	var models []Model
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.EqualFold(fields[0], "NAME") {
			continue // header row
		}

		m := Model{Name: fields[0]}
		if len(fields) > 1 {
			m.ID = fields[1]
		}
		if len(fields) > 3 {
			m.Size = fields[2] + " " + fields[3]
		}
		if len(fields) > 4 {
			m.Modified = strings.Join(fields[4:], " ")
		}
		models = append(models, m)
	}
	return models
}

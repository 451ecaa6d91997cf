package launcher

import (
	"context"
	"testing"
)

func TestRunPropagatesExitCode(t *testing.T) {
	tests := []struct {
		script   string
		expected int
		desc     string
	}{
		{"exit 0", 0, "clean exit"},
		{"exit 1", 1, "generic failure"},
		{"exit 2", 2, "exit code 2"},
		{"exit 42", 42, "arbitrary code"},
		{"exit 255", 255, "max exit code"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			code, err := Run(context.Background(), "sh", "-c", tt.script)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if code != tt.expected {
				t.Errorf("Run(%q) = %d, expected %d", tt.script, code, tt.expected)
			}
		})
	}
}

func TestRunStartFailure(t *testing.T) {
	code, err := Run(context.Background(), "definitely-not-a-real-command-xyz")
	if err == nil {
		t.Fatal("expected an error for a missing delegate")
	}
	if code != -1 {
		t.Errorf("expected code -1 on start failure, got %d", code)
	}
}

func TestDefaultDelegate(t *testing.T) {
	if len(DefaultDelegate) == 0 {
		t.Fatal("DefaultDelegate is empty")
	}
	if DefaultDelegate[0] != "python3" {
		t.Errorf("expected python3 delegate, got %q", DefaultDelegate[0])
	}
}

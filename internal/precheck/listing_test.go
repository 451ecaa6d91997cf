package precheck

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestListingContains(t *testing.T) {
	tests := []struct {
		output   string
		pattern  string
		expected bool
		desc     string
	}{
		{"qwen2.5:3b-instruct\nllama2:7b", "qwen2.5:3b-instruct", true, "model present"},
		{"llama2:7b\nmistral:7b", "qwen2.5:3b-instruct", false, "model absent"},
		{"qwen2.5:3b-instruct-q4 abc123 2.0 GB", "qwen2.5:3b-instruct", true, "substring of longer tag"},
		{"", "qwen2.5:3b-instruct", false, "empty output"},
		{"llama2:7b", "", false, "empty pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := ListingContains(tt.output, tt.pattern)
			if result != tt.expected {
				t.Errorf("ListingContains(%q, %q) = %v, expected %v",
					tt.output, tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestParseListing(t *testing.T) {
	output := strings.Join([]string{
		"NAME                   ID              SIZE      MODIFIED",
		"qwen2.5:3b-instruct    357c53fb659c    1.9 GB    3 weeks ago",
		"llama2:7b              78e26419b446    3.8 GB    2 months ago",
		"",
	}, "\n")

	models := ParseListing(output)
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d: %v", len(models), models)
	}

	first := models[0]
	if first.Name != "qwen2.5:3b-instruct" {
		t.Errorf("expected name qwen2.5:3b-instruct, got %q", first.Name)
	}
	if first.ID != "357c53fb659c" {
		t.Errorf("expected ID 357c53fb659c, got %q", first.ID)
	}
	if first.Size != "1.9 GB" {
		t.Errorf("expected size 1.9 GB, got %q", first.Size)
	}
	if first.Modified != "3 weeks ago" {
		t.Errorf("expected modified '3 weeks ago', got %q", first.Modified)
	}
}

func TestParseListingEmpty(t *testing.T) {
	if models := ParseListing(""); len(models) != 0 {
		t.Errorf("expected no models for empty output, got %v", models)
	}
	if models := ParseListing("NAME ID SIZE MODIFIED\n"); len(models) != 0 {
		t.Errorf("expected no models for header-only output, got %v", models)
	}
}

func TestRunListing(t *testing.T) {
	ctx := context.Background()

	out, err := RunListing(ctx, "sh", "-c", "echo qwen2.5:3b-instruct")
	if err != nil {
		t.Fatalf("RunListing failed: %v", err)
	}
	if !strings.Contains(out, "qwen2.5:3b-instruct") {
		t.Errorf("expected captured stdout, got %q", out)
	}
}

func TestRunListingToolFailures(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		desc    string
	}{
		{"sh", []string{"-c", "exit 3"}, "non-zero exit"},
		{"sh", []string{"-c", "echo broken >&2; exit 1"}, "non-zero exit with stderr"},
		{"definitely-not-a-real-command-xyz", nil, "command not found"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := RunListing(context.Background(), tt.command, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrListingToolFailed) {
				t.Errorf("expected ErrListingToolFailed, got %v", err)
			}
		})
	}
}

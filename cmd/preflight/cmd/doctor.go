package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aireport/preflight/internal/ollama"
	"github.com/aireport/preflight/internal/precheck"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run every readiness check and report the results",
	Long: `Doctor runs all readiness checks without stopping at the first failure:
the daemon process, the model listing tool, the required model, and the
Ollama HTTP API. Exit code is 0 only when every check passes.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	checker := precheck.NewChecker(processName, modelName)

	var results []precheck.Result

	table, err := precheck.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to read process table: %w", err)
	}
	results = append(results, checker.CheckProcess(table))

	output, err := checker.Listing(ctx)
	if err != nil {
		results = append(results,
			precheck.Result{
				Name:   "model listing",
				Detail: err.Error(),
				Remedy: "check that the ollama CLI is installed and on PATH",
			},
			precheck.Result{
				Name:   "model",
				Detail: fmt.Sprintf("%s could not be verified", modelName),
			})
	} else {
		results = append(results,
			precheck.Result{
				Name:   "model listing",
				OK:     true,
				Detail: fmt.Sprintf("%d models installed", len(precheck.ParseListing(output))),
			},
			checker.CheckModel(output))
	}

	results = append(results, checkAPI(ctx))

	if err := renderResults(results); err != nil {
		return err
	}

	for _, r := range results {
		if !r.OK {
			os.Exit(1)
		}
	}
	return nil
}

// checkAPI probes the daemon's HTTP API. Reachability only; the run gate
// never depends on it.
func checkAPI(ctx context.Context) precheck.Result {
	r := precheck.Result{Name: "api"}

	client := ollama.NewClient(ollamaURL)
	version, err := client.Version(ctx)
	if err != nil {
		r.Detail = fmt.Sprintf("API not reachable at %s", ollamaURL)
		r.Remedy = "start the daemon or set --ollama-url"
		return r
	}

	r.OK = true
	r.Detail = fmt.Sprintf("ollama %s at %s", version, ollamaURL)
	return r
}

func renderResults(results []precheck.Result) error {
	if IsJSONOutput() {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}
	if IsYAMLOutput() {
		output, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(output))
		return nil
	}

	// Output as table
	t := tablewriter.NewWriter(os.Stdout)
	t.Header("CHECK", "STATUS", "DETAIL", "REMEDY")

	for _, r := range results {
		status := "PASS"
		if !r.OK {
			status = "FAIL"
		}
		t.Append(r.Name, status, r.Detail, r.Remedy)
	}

	t.Render()
	return nil
}

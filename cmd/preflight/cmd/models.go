package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aireport/preflight/internal/precheck"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List locally installed models",
	Long: `Retrieve and display the models installed in the local Ollama daemon,
marking the one the report assistant requires.`,
	RunE: runModelsList,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModelsList(cmd *cobra.Command, args []string) error {
	checker := precheck.NewChecker(processName, modelName)

	output, err := checker.Listing(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	models := precheck.ParseListing(output)

	if IsJSONOutput() {
		data, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	// Output as table
	if len(models) == 0 {
		fmt.Println("No models installed")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("NAME", "ID", "SIZE", "MODIFIED", "REQUIRED")

	for _, m := range models {
		required := ""
		if m.Name == modelName {
			required = "yes"
		}
		table.Append(m.Name, m.ID, m.Size, m.Modified, required)
	}

	table.Render()
	fmt.Printf("\nTotal models: %d\n", len(models))
	return nil
}

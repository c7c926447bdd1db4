package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [json] [sqlite]",
	Short: "Copy a JSON profile file into a SQLite database",
	Long: `Reads every profile from a JSON file and writes them to a SQLite
database, replacing its previous contents. The database can then be used
as a profile source with --data or "profdir source".`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if backend == nil || backend.Import == nil {
		return errors.New("import not configured")
	}

	count, err := backend.Import(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d profiles into %s\n", count, args[1])
	return nil
}

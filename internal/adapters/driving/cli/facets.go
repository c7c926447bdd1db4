package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var facetsJSON bool

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the filter values",
	Long:  `Lists the distinct areas, cities and technologies of the loaded profiles.`,
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func init() {
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "output facets as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}

	facets := s.Directory.Facets()

	if facetsJSON {
		data, err := json.MarshalIndent(map[string][]string{
			"areas":        facets.Areas,
			"cities":       facets.Cities,
			"technologies": facets.Technologies,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal facets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Areas:        %s\n", strings.Join(facets.Areas, ", "))
	cmd.Printf("Cities:       %s\n", strings.Join(facets.Cities, ", "))
	cmd.Printf("Technologies: %s\n", strings.Join(facets.Technologies, ", "))
	return nil
}

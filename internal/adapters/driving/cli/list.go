package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cardlist "github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/profdir/internal/core/domain"
)

// noMatches is printed when the filters leave nothing.
const noMatches = "No profiles match your filters."

var (
	listSearch string
	listArea   string
	listCity   string
	listTech   string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles matching the filters",
	Long: `Lists the profiles that satisfy every given filter, in collection order.

--search matches name, role and summary case-insensitively.
--area and --city must match exactly (see "profdir facets").
--tech matches any technical skill as a case-insensitive substring.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output profiles as JSON")
	rootCmd.AddCommand(listCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listSearch, "search", "s", "", "free-text search")
	cmd.Flags().StringVar(&listArea, "area", "", "professional area")
	cmd.Flags().StringVar(&listCity, "city", "", "city")
	cmd.Flags().StringVar(&listTech, "tech", "", "technology")
}

func listCriteria() domain.Criteria {
	return domain.Criteria{
		Search:     listSearch,
		Area:       listArea,
		City:       listCity,
		Technology: listTech,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}

	profiles := s.Directory.Filter(listCriteria())

	if listJSON {
		return outputProfilesJSON(cmd, profiles)
	}
	return outputProfilesTable(cmd, profiles, s.Directory.Count())
}

// profileRow is the JSON shape of a listed profile.
type profileRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Area     string   `json:"area"`
	Skills   []string `json:"skills"`
}

func outputProfilesJSON(cmd *cobra.Command, profiles []domain.Profile) error {
	rows := make([]profileRow, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		rows[i] = profileRow{
			ID:       p.ID,
			Name:     p.Name,
			Role:     p.Role,
			Location: p.Location,
			Area:     p.Area,
			Skills:   p.Skills,
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProfilesTable(cmd *cobra.Command, profiles []domain.Profile, total int) error {
	if len(profiles) == 0 {
		cmd.Println(noMatches)
		return nil
	}

	cmd.Printf("Showing %d of %d profiles\n", len(profiles), total)
	cmd.Println()
	for i := range profiles {
		p := &profiles[i]
		// Format: [id] Name - Role
		cmd.Printf("  [%s] %s - %s\n", p.ID, p.Name, p.Role)
		cmd.Printf("      %s | %s\n", p.Location, p.Area)
		if skills := skillSummary(p.Skills); skills != "" {
			cmd.Printf("      %s\n", skills)
		}
		cmd.Println()
	}
	return nil
}

// skillSummary renders the card skills: the first few and "+N".
func skillSummary(skills []string) string {
	shown, rest := cardlist.CardSkills(skills)
	out := strings.Join(shown, ", ")
	if rest > 0 {
		out += fmt.Sprintf(" +%d", rest)
	}
	return out
}

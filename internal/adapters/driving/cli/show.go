package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a profile",
	Long:  `Prints every section of one profile, the way the detail view shows it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}

	p, err := s.Directory.Get(args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("profile %q not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	printProfile(cmd, p)
	return nil
}

func printProfile(cmd *cobra.Command, p *domain.Profile) {
	cmd.Println(p.Name)
	cmd.Println(strings.Repeat("=", len([]rune(p.Name))))
	cmd.Println(p.Role)
	cmd.Printf("%s | %s\n", p.Location, p.Area)
	if p.Summary != "" {
		cmd.Println()
		cmd.Println(p.Summary)
	}

	printList(cmd, "Technical Skills", p.Skills)
	printList(cmd, "Soft Skills", p.SoftSkills)

	if len(p.Experiences) > 0 {
		section(cmd, "Experience")
		for _, e := range p.Experiences {
			cmd.Printf("  %s - %s\n", e.Role, e.Employer)
			cmd.Printf("    %s - %s\n", e.Start, e.End)
			if e.Description != "" {
				cmd.Printf("    %s\n", e.Description)
			}
		}
	}

	if len(p.Education) > 0 {
		section(cmd, "Education")
		for _, e := range p.Education {
			cmd.Printf("  %s\n", e.Course)
			cmd.Printf("    %s - %s\n", e.Institution, e.Year)
		}
	}

	if len(p.Projects) > 0 {
		section(cmd, "Projects")
		for _, pr := range p.Projects {
			cmd.Printf("  %s\n", pr.Title)
			if pr.Link != "" {
				cmd.Printf("    %s\n", pr.Link)
			}
			if pr.Description != "" {
				cmd.Printf("    %s\n", pr.Description)
			}
		}
	}

	printList(cmd, "Certifications", p.Certifications)

	if len(p.Languages) > 0 {
		section(cmd, "Languages")
		for _, l := range p.Languages {
			cmd.Printf("  • %s - %s\n", l.Name, l.Level)
		}
	}

	printList(cmd, "Interests", p.Interests)
}

func section(cmd *cobra.Command, title string) {
	cmd.Println()
	cmd.Printf("[%s]\n", title)
}

func printList(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	section(cmd, title)
	for _, item := range items {
		cmd.Printf("  • %s\n", item)
	}
}

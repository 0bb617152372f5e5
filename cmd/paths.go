package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/careerpivot/internal/app"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [name]",
	Short: "Browse the AI career paths for engineers",
	Example: `  careerpivot paths
  careerpivot paths "Technical Translators"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}

		names := a.Catalog.CareerPathNames()
		if len(args) == 1 {
			name := strings.Join(args, " ")
			if _, ok := a.Catalog.CareerPath(name); !ok {
				return fmt.Errorf("career path %q: %w (try one of: %s)", name, app.ErrNotFound, strings.Join(names, ", "))
			}
			names = []string{name}
		}

		cmd.Println(titleStyle.Render("AI Career Paths for Engineers"))
		for i, name := range names {
			p, _ := a.Catalog.CareerPath(name)
			cmd.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%d.", i+1)), valueStyle.Render(name))
			cmd.Printf("   %s %s\n", labelStyle.Render("Description:"), p.Description)
			cmd.Printf("   %s %s\n", labelStyle.Render("Goal:"), p.Goal)
			cmd.Printf("   %s %s\n", labelStyle.Render("Timeline:"), p.Timeline)
			cmd.Printf("   %s %s\n", labelStyle.Render("Focus:"), p.Focus)
			cmd.Printf("   %s %s\n\n", labelStyle.Render("Example:"), p.Example)
		}
		return nil
	},
}

var timelinesCmd = &cobra.Command{
	Use:   "timelines",
	Short: "Show the learning timeline plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render("Learning Timelines"))
		for _, name := range a.Catalog.TimelinePlanNames() {
			t, _ := a.Catalog.TimelinePlan(name)
			cmd.Printf("%s %s\n", labelStyle.Render(name+":"), valueStyle.Render(t.Subtitle))
			cmd.Printf("   %s %s\n", labelStyle.Render("Focus:"), t.Focus)
			for _, step := range t.Structure {
				cmd.Printf("   • %s\n", step)
			}
			cmd.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(timelinesCmd)
}

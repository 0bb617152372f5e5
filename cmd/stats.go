package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View assessment statistics",
	Long:  "Display how many engineers have been assessed and the most popular career paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}

		stats, err := a.Archive.Stats()
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		if stats.Total == 0 {
			cmd.Println("No assessments yet. Take one with 'careerpivot assess'")
			return nil
		}

		cmd.Println(titleStyle.Render("Assessment Stats"))
		cmd.Printf("%s %d\n", labelStyle.Render("Engineers assessed:"), stats.Total)
		cmd.Printf("%s %s\n", labelStyle.Render("Archive:"), a.Archive.Path())

		if len(stats.PopularPaths) > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Popular paths"))
			for _, pc := range stats.PopularPaths {
				percentage := float64(pc.Count) / float64(stats.Total) * 100
				cmd.Printf("  %s: %d (%.1f%%)\n", pc.Path, pc.Count, percentage)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

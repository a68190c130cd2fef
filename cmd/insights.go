package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/insights"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show skill counts, category coverage and career readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureDashboard, func(e *env) error {
			p, _ := e.session.Profile()
			d := insights.Summarize(e.catalog, p)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Skills %d   Advanced %d   Projects %d   Certifications %d\n",
				d.TotalSkills, d.AdvancedSkills, d.Projects, d.Certifications)
			fmt.Fprintf(out, "Career readiness  %s %3d%%\n\n", bar(d.Readiness, 30), d.Readiness)

			fmt.Fprintln(out, "Category coverage")
			for _, c := range d.Coverage {
				fmt.Fprintf(out, "  %-28s %s %3d%%\n", c.Name, bar(c.Value, 30), c.Value)
			}

			fmt.Fprintln(out, "\nProficiency")
			for _, lc := range d.Histogram {
				fmt.Fprintf(out, "  %-14s %d\n", lc.Level, lc.Count)
			}

			fmt.Fprintln(out, "\nTop strengths")
			for _, us := range d.Strengths {
				fmt.Fprintf(out, "  • %s\n", us.Skill.Name)
			}
			fmt.Fprintln(out, "\nImprove next")
			for _, us := range d.Improvements {
				fmt.Fprintf(out, "  • %s\n", us.Skill.Name)
			}
			return nil
		})
	},
}

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Compare your skills with your career goal's requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureSkillGap, func(e *env) error {
			p, _ := e.session.Profile()
			r := insights.AnalyzeGap(e.catalog, p)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n", r.Goal.Icon, r.Goal.Title)
			if r.Fallback {
				fmt.Fprintln(out, "(no career goal selected; showing the default goal)")
			}
			fmt.Fprintf(out, "Coverage %s %3d%%   %d missing, %d to improve, %d met\n\n",
				bar(r.Coverage, 20), r.Coverage, len(r.Critical), len(r.High), len(r.Met))

			for _, it := range r.Items {
				fmt.Fprintf(out, "  %-8s  %-36s  %d/%d\n",
					strings.ToUpper(string(it.Priority)), it.Skill.Name, it.CurrentLevel, it.RequiredLevel)
			}

			fmt.Fprintln(out, "\nCategory progress")
			for _, c := range insights.CategoryProgress(e.catalog, p) {
				fmt.Fprintf(out, "  %-28s %s %d/%d\n", c.Name, bar(c.Progress, 20), c.Acquired, c.Total)
			}
			return nil
		})
	},
}

var recsCmd = &cobra.Command{
	Use:   "recs",
	Short: "List recommended courses and projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		var f insights.Filter
		f.Type, _ = cmd.Flags().GetString("type")
		f.Difficulty, _ = cmd.Flags().GetString("difficulty")
		f.Skill, _ = cmd.Flags().GetString("skill")
		f.Search, _ = cmd.Flags().GetString("search")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return withFeature(cmd, auth.FeatureRecommendations, func(e *env) error {
			recs := insights.FilterRecommendations(e.catalog, f)
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No recommendations match these filters.")
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(out, "%-6s  %-7s  %-12s  %-10s  %s\n", r.ID, r.Type, r.Difficulty, r.Duration, r.Title)
				if verbose {
					fmt.Fprintf(out, "        %s\n        Why: %s\n        Skills: %s\n",
						r.Description, r.Explanation, strings.Join(r.Skills, ", "))
				}
			}
			fmt.Fprintf(out, "\n%d of %d recommendations\n", len(recs), len(e.catalog.Recommendations()))
			return nil
		})
	},
}

// bar renders a plain-text progress bar of the given width.
func bar(percent, width int) string {
	filled := min(max(width*percent/100, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func init() {
	recsCmd.Flags().String("type", insights.All, "course, project or all")
	recsCmd.Flags().String("difficulty", insights.All, "beginner, intermediate, advanced or all")
	recsCmd.Flags().String("skill", insights.All, "Skill id or all")
	recsCmd.Flags().String("search", "", "Case-insensitive text search")
	recsCmd.Flags().BoolP("verbose", "v", false, "Show descriptions and skills")
}

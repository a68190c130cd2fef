package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/spf13/cobra"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete the six onboarding steps",
	Long: "Onboarding unlocks the dashboard, skill gap, recommendations and quiz.\n" +
		"Steps may be completed in any order. Education, experience and\n" +
		"certification entries are added with `healthskill profile <kind> add`\n" +
		"and then confirmed with `healthskill onboard step <n>`.",
}

var onboardStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which onboarding steps are done",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			p, ok := e.session.Profile()
			if !ok {
				return auth.ErrNoSession
			}
			out := cmd.OutOrStdout()
			for _, s := range profile.Steps() {
				mark := "[ ]"
				if p.HasStep(s.Number) {
					mark = "[✓]"
				}
				fmt.Fprintf(out, "%s %d. %s\n", mark, s.Number, s.Name)
			}
			if p.IsComplete() {
				fmt.Fprintln(out, "\nOnboarding complete. Every feature is unlocked.")
			} else {
				fmt.Fprintf(out, "\n%d of %d steps done.\n", len(p.CompletedSteps), profile.StepCount)
			}
			return nil
		})
	},
}

var onboardStepCmd = &cobra.Command{
	Use:   "step <n>",
	Short: "Submit one onboarding step",
	Example: `  healthskill onboard step 1
  healthskill onboard step 2 --goal health-data-analyst
  healthskill onboard step 3 --skill sql=advanced --skill python --skill hipaa=beginner
  healthskill onboard step 6 --interest "Clinical Research" --interest "Population Health"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		step, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", profile.ErrInvalidStep, args[0])
		}
		patch, err := stepPatch(cmd)
		if err != nil {
			return err
		}

		return withEnv(cmd, func(e *env) error {
			p, err := e.session.SubmitStep(e.ctx, step, patch)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Step %d (%s) complete. %d of %d steps done.\n",
				step, profile.StepName(step), len(p.CompletedSteps), profile.StepCount)
			if p.IsComplete() {
				fmt.Fprintln(out, "Onboarding complete. Every feature is unlocked.")
			}
			return nil
		})
	},
}

// stepPatch builds a patch from whichever step flags were given.
func stepPatch(cmd *cobra.Command) (profile.Patch, error) {
	var patch profile.Patch
	flags := cmd.Flags()

	if flags.Changed("goal") {
		goal, _ := flags.GetString("goal")
		patch.CareerGoalID = &goal
	}
	if flags.Changed("skill") {
		specs, _ := flags.GetStringArray("skill")
		skills := make([]profile.UserSkill, 0, len(specs))
		for _, spec := range specs {
			us, err := parseSkillSpec(spec)
			if err != nil {
				return profile.Patch{}, err
			}
			skills = append(skills, us)
		}
		patch.Skills = &skills
	}
	if flags.Changed("interest") {
		interests, _ := flags.GetStringArray("interest")
		patch.Interests = &interests
	}
	return patch, nil
}

// parseSkillSpec parses "id" or "id=level".
func parseSkillSpec(spec string) (profile.UserSkill, error) {
	id, lvl, found := strings.Cut(spec, "=")
	level := profile.DefaultProficiency
	if found {
		l, ok := catalog.ParseLevel(lvl)
		if !ok {
			return profile.UserSkill{}, fmt.Errorf("%w: %q", profile.ErrInvalidLevel, lvl)
		}
		level = l
	}
	return profile.UserSkill{SkillID: strings.TrimSpace(id), Proficiency: level}, nil
}

func init() {
	onboardStepCmd.Flags().String("goal", "", "Career goal id (step 2)")
	onboardStepCmd.Flags().StringArray("skill", nil, "Skill as id or id=level, repeatable (step 3)")
	onboardStepCmd.Flags().StringArray("interest", nil, "Interest, repeatable (step 6)")

	onboardCmd.AddCommand(onboardStatusCmd, onboardStepCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog and manage your skills",
}

var skillCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List all catalog skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		cat := catalog.Default()

		var skills []catalog.Skill
		if category != "" {
			skills = cat.SkillsByCategory(catalog.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		} else {
			skills = cat.Skills()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-22s  %-40s  %s\n", "ID", "Name", "Category")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, s := range skills {
			fmt.Fprintf(out, "%-22s  %-40s  %s\n", s.ID, s.Name, cat.CategoryInfo(s.Category).Name)
		}
		fmt.Fprintf(out, "\n%d skills\n", len(skills))
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills on your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureSkills, func(e *env) error {
			p, _ := e.session.Profile()
			out := cmd.OutOrStdout()
			if len(p.Skills) == 0 {
				fmt.Fprintln(out, "No skills yet. Add one with `healthskill skill add <id>`.")
				return nil
			}
			for _, us := range p.Skills {
				fmt.Fprintf(out, "%-22s  %-40s  %s\n", us.SkillID, us.Skill.Name, us.Proficiency)
			}
			return nil
		})
	},
}

var skillAddCmd = &cobra.Command{
	Use:   "add <skill-id>",
	Short: "Add a catalog skill to your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		return withFeature(cmd, auth.FeatureSkills, func(e *env) error {
			p, err := e.session.AddSkill(e.ctx, args[0], level)
			if err != nil {
				return err
			}
			us, _ := p.FindSkill(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", us.Skill.Name, us.Proficiency)
			return nil
		})
	},
}

var skillSetCmd = &cobra.Command{
	Use:   "set <skill-id> <level>",
	Short: "Change the proficiency of one of your skills",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, ok := catalog.ParseLevel(args[1])
		if !ok {
			return fmt.Errorf("%w: %q", profile.ErrInvalidLevel, args[1])
		}
		return withFeature(cmd, auth.FeatureSkills, func(e *env) error {
			if _, err := e.session.SetProficiency(e.ctx, args[0], level); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", args[0], level)
			return nil
		})
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <skill-id>",
	Short: "Remove a skill from your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureSkills, func(e *env) error {
			if _, err := e.session.RemoveSkill(e.ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		})
	},
}

func levelFlag(cmd *cobra.Command) (profile.Proficiency, error) {
	s, _ := cmd.Flags().GetString("level")
	level, ok := catalog.ParseLevel(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", profile.ErrInvalidLevel, s)
	}
	return level, nil
}

func init() {
	skillCatalogCmd.Flags().String("category", "", "Filter by category id (e.g. privacy-security)")
	skillAddCmd.Flags().String("level", string(profile.DefaultProficiency), "Proficiency: beginner, intermediate or advanced")

	skillCmd.AddCommand(skillCatalogCmd, skillListCmd, skillAddCmd, skillSetCmd, skillRemoveCmd)
}

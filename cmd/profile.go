package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your career profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			p, ok := e.session.Profile()
			if !ok {
				return auth.ErrNoSession
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

var profileExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your profile as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		return withEnv(cmd, func(e *env) error {
			p, ok := e.session.Profile()
			if !ok {
				return auth.ErrNoSession
			}

			var data []byte
			var err error
			switch format {
			case "yaml", "yml":
				data, err = yaml.Marshal(p)
			case "json":
				data, err = json.MarshalIndent(p, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Profile written to %s\n", output)
			return nil
		})
	},
}

var profileGoalCmd = &cobra.Command{
	Use:   "goal [goal-id]",
	Short: "Set your career goal (no argument lists the goals)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearGoal, _ := cmd.Flags().GetBool("clear")

		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 && !clearGoal {
				p, _ := e.session.Profile()
				for _, g := range e.catalog.CareerGoals() {
					mark := " "
					if p.CareerGoal != nil && p.CareerGoal.ID == g.ID {
						mark = "*"
					}
					fmt.Fprintf(out, "%s %-28s %s\n", mark, g.ID, g.Title)
				}
				return nil
			}

			id := ""
			if !clearGoal {
				id = args[0]
			}
			p, err := e.session.UpdateProfile(e.ctx, profile.Patch{CareerGoalID: &id})
			if err != nil {
				return err
			}
			if p.CareerGoal == nil {
				fmt.Fprintln(out, "Career goal cleared.")
			} else {
				fmt.Fprintf(out, "Career goal set to %s.\n", p.CareerGoal.Title)
			}
			return nil
		})
	},
}

var profileInterestsCmd = &cobra.Command{
	Use:   "interests [interest...]",
	Short: "Replace your interests (no arguments lists the options)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				p, _ := e.session.Profile()
				for _, in := range e.catalog.Interests() {
					mark := " "
					for _, have := range p.Interests {
						if have == in {
							mark = "*"
						}
					}
					fmt.Fprintf(out, "%s %s\n", mark, in)
				}
				return nil
			}
			p, err := e.session.UpdateProfile(e.ctx, profile.Patch{Interests: &args})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Interests: %s\n", strings.Join(p.Interests, ", "))
			return nil
		})
	},
}

type (
	entryAdder   func(ctx context.Context, svc *profile.Service, p profile.Profile, f map[string]string) (profile.Profile, error)
	entryRemover func(svc *profile.Service, ctx context.Context, p profile.Profile, id string) (profile.Profile, error)
)

// entryCommands builds the add/remove pair for one kind of profile entry.
// The first flag is required.
func entryCommands(use, short string, flags []string, add entryAdder, remove entryRemover) *cobra.Command {
	parent := &cobra.Command{Use: use, Short: short}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(flags))
			for _, name := range flags {
				values[name], _ = cmd.Flags().GetString(name)
			}
			return withEnv(cmd, func(e *env) error {
				p, err := e.session.Edit(e.ctx, func(ctx context.Context, svc *profile.Service, p profile.Profile) (profile.Profile, error) {
					return add(ctx, svc, p, values)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added. Your profile now has %s.\n", entryCounts(p))
				return nil
			})
		},
	}
	for _, name := range flags {
		addCmd.Flags().String(name, "", strings.ReplaceAll(name, "-", " "))
	}
	_ = addCmd.MarkFlagRequired(flags[0])

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				p, err := e.session.Edit(e.ctx, func(ctx context.Context, svc *profile.Service, p profile.Profile) (profile.Profile, error) {
					return remove(svc, ctx, p, args[0])
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed. Your profile now has %s.\n", entryCounts(p))
				return nil
			})
		},
	}

	parent.AddCommand(addCmd, removeCmd)
	return parent
}

func entryCounts(p profile.Profile) string {
	return fmt.Sprintf("%d education, %d experience and %d certification entries",
		len(p.Education), len(p.Experiences), len(p.Certifications))
}

var educationCmd = entryCommands("education", "Manage education entries",
	[]string{"degree", "institution", "field", "year"},
	func(ctx context.Context, svc *profile.Service, p profile.Profile, f map[string]string) (profile.Profile, error) {
		return svc.AddEducation(ctx, p, profile.Education{
			Degree: f["degree"], Institution: f["institution"], Field: f["field"], Year: f["year"],
		})
	},
	(*profile.Service).RemoveEducation,
)

var experienceCmd = entryCommands("experience", "Manage work and project experience",
	[]string{"title", "organization", "duration", "description"},
	func(ctx context.Context, svc *profile.Service, p profile.Profile, f map[string]string) (profile.Profile, error) {
		return svc.AddExperience(ctx, p, profile.Experience{
			Title: f["title"], Organization: f["organization"], Duration: f["duration"], Description: f["description"],
		})
	},
	(*profile.Service).RemoveExperience,
)

var certCmd = entryCommands("cert", "Manage certifications",
	[]string{"name", "issuer", "year", "credential-id"},
	func(ctx context.Context, svc *profile.Service, p profile.Profile, f map[string]string) (profile.Profile, error) {
		return svc.AddCertification(ctx, p, profile.Certification{
			Name: f["name"], Issuer: f["issuer"], Year: f["year"], CredentialID: f["credential-id"],
		})
	},
	(*profile.Service).RemoveCertification,
)

// printProfile writes a human-readable profile summary.
func printProfile(w io.Writer, p profile.Profile) {
	goal := "(none)"
	if p.CareerGoal != nil {
		goal = p.CareerGoal.Title
	}
	fmt.Fprintf(w, "Career goal:  %s\n", goal)
	fmt.Fprintf(w, "Onboarding:   %d of %d steps\n", len(p.CompletedSteps), profile.StepCount)
	fmt.Fprintf(w, "Interests:    %s\n", strings.Join(p.Interests, ", "))

	fmt.Fprintf(w, "\nSkills (%d)\n", len(p.Skills))
	for _, us := range p.Skills {
		fmt.Fprintf(w, "  %-22s %-40s %s\n", us.SkillID, us.Skill.Name, us.Proficiency)
	}

	fmt.Fprintf(w, "\nEducation (%d)\n", len(p.Education))
	for _, ed := range p.Education {
		fmt.Fprintf(w, "  %s  %s, %s %s %s\n", ed.ID, ed.Degree, ed.Institution, ed.Field, ed.Year)
	}

	fmt.Fprintf(w, "\nExperience (%d)\n", len(p.Experiences))
	for _, ex := range p.Experiences {
		fmt.Fprintf(w, "  %s  %s at %s %s\n", ex.ID, ex.Title, ex.Organization, ex.Duration)
	}

	fmt.Fprintf(w, "\nCertifications (%d)\n", len(p.Certifications))
	for _, c := range p.Certifications {
		fmt.Fprintf(w, "  %s  %s (%s %s)\n", c.ID, c.Name, c.Issuer, c.Year)
	}
}

func init() {
	profileExportCmd.Flags().String("format", "yaml", "Output format: yaml or json")
	profileExportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	profileGoalCmd.Flags().Bool("clear", false, "Clear the career goal")

	profileCmd.AddCommand(profileShowCmd, profileExportCmd, profileGoalCmd, profileInterestsCmd)
	profileCmd.AddCommand(educationCmd, experienceCmd, certCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/healthskill/internal/app"
	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/screens/home"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "healthskill",
	Short: "Healthcare technology skills tracker",
	Long: "HealthSkill tracks your healthcare-technology skills, compares them with a\n" +
		"career goal, recommends courses and projects, and quizzes your knowledge.\n\n" +
		"Run without a subcommand to open the terminal UI.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			return app.Run(home.Deps{
				Session: e.session,
				Catalog: e.catalog,
				History: e.history,
				Logger:  e.logger,
			})
		})
	},
}

// Execute runs the root command and prints a friendly message for known
// failures.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", friendlyError(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HEALTHSKILL_DB_PATH)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: healthskill.yaml in . or the XDG config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(dashboardCmd, gapCmd, recsCmd)
	rootCmd.AddCommand(quizCmd)
}

// friendlyError turns known sentinel errors into actionable messages.
func friendlyError(err error) string {
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("step %d (%s): %s", verr.Step, profile.StepName(verr.Step), verr.Message)
	case errors.Is(err, auth.ErrNoSession):
		return "not logged in; run `healthskill login` or `healthskill signup` first"
	case errors.Is(err, auth.ErrLocked):
		return err.Error() + "; see `healthskill onboard status`"
	default:
		return err.Error()
	}
}

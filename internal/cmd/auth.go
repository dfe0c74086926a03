package cmd

import (
	"fmt"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/client"
	"github.com/Jaymi-01/framez/pkg/credentials"
	"github.com/Jaymi-01/framez/pkg/logger"
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/Jaymi-01/framez/pkg/prompter"
	"github.com/Jaymi-01/framez/pkg/service"
	"github.com/spf13/cobra"
)

var (
	authEmail       string
	authDisplayName string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Create an account, log in and out of Framez",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Framez account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := promptIfEmpty(authEmail, "Email: ")
		if err != nil {
			return err
		}
		displayName, err := promptIfEmpty(authDisplayName, "Display name: ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := prompter.PromptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		resp, err := api.Default().Register(cmd.Context(), api.RegisterRequest{
			Email:       email,
			Password:    password,
			DisplayName: displayName,
		})
		if err != nil {
			return err
		}
		if err := saveSession(resp); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		output.PrintSuccess("Welcome to Framez, %s!", service.DisplayName(&resp.User))
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Framez",
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := credentials.Load()
		if err != nil {
			return err
		}
		if existing != nil && existing.IsValid() {
			output.PrintWarning("already logged in as %s", existing.Email)
			ok, err := prompter.PromptConfirm("Continue with a new login?")
			if err != nil || !ok {
				return err
			}
		}

		email, err := promptIfEmpty(authEmail, "Email: ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}

		resp, err := api.Default().Login(cmd.Context(), api.LoginRequest{Email: email, Password: password})
		if err != nil {
			return err
		}
		if err := saveSession(resp); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		output.PrintSuccess("Logged in as %s", service.DisplayName(&resp.User))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of Framez",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		revoked, err := s.api.Logout(cmd.Context())
		if err != nil {
			// the local token is dropped either way
			logger.Warn("Server logout failed", "error", err)
		}
		client.ClearAuthToken()
		if err := credentials.Delete(); err != nil {
			return err
		}

		if revoked {
			output.PrintSuccess("Logged out, session revoked")
		} else {
			output.PrintSuccess("Logged out")
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		me, err := s.api.Me(cmd.Context())
		if err != nil {
			return wrapAuthError(err)
		}
		if err := s.refreshStoredUser(me); err != nil {
			logger.Warn("Failed to update stored credentials", "error", err)
		}

		if output.GetFormat() == output.FormatJSON {
			return output.JSON(me)
		}
		renderUser(me)
		return nil
	},
}

func promptIfEmpty(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return prompter.PromptString(label)
}

func init() {
	signupCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&authDisplayName, "display-name", "", "Display name (at least 3 characters)")
	loginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")

	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}

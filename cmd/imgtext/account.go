package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricofy/image-translator/internal/backend"
	"github.com/pricofy/image-translator/internal/domain"
	"github.com/pricofy/image-translator/internal/session"
)

// passwordEnv is read when --password is not given.
const passwordEnv = "IMGTEXT_PASSWORD"

func password(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if v := os.Getenv(passwordEnv); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("password is required (--password or %s)", passwordEnv)
}

// ---------------------------------------------------------------------------
// signup
// ---------------------------------------------------------------------------

func newSignupCmd() *cobra.Command {
	var name, email, pass string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := password(pass)
			if err != nil {
				return err
			}
			app, err := loadApp()
			if err != nil {
				return err
			}

			res, err := app.client.Signup(cmd.Context(), domain.SignupRequest{Name: name, Email: email, Password: pw})
			if err != nil {
				return err
			}
			logSuccess("%s", res.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&pass, "password", "", "Password (or "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// ---------------------------------------------------------------------------
// login / logout
// ---------------------------------------------------------------------------

func newLoginCmd() *cobra.Command {
	var name, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: `Log in with a username or email address.

The session token is stored in the user data directory and sent with every
later request until logout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := password(pass)
			if err != nil {
				return err
			}
			app, err := loadApp()
			if err != nil {
				return err
			}

			res, err := app.client.Login(cmd.Context(), domain.LoginRequest{Name: name, Password: pw})
			if err != nil {
				return err
			}
			if res.Token == "" {
				return errors.New("login succeeded but no token was returned")
			}
			if err := session.Save(app.sessionPath, &session.Session{Token: res.Token, Name: res.Name, Email: res.Email}); err != nil {
				return err
			}
			logSuccess("Logged in as %s", res.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Username or email (required)")
	cmd.Flags().StringVar(&pass, "password", "", "Password (or "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if app.client.Token() == "" {
				logInfo("Not logged in")
				return nil
			}
			// The local session goes even if the server call fails.
			if _, err := app.client.Logout(cmd.Context()); err != nil {
				logWarning("server logout failed: %v", err)
			}
			if err := session.Clear(app.sessionPath); err != nil {
				return err
			}
			logSuccess("Logged out")
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// status
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show login status",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), cmd.OutOrStdout(), app.client, app.cfg.API.BaseURL)
		},
	}
}

func runStatus(ctx context.Context, out io.Writer, client *backend.Client, baseURL string) error {
	fmt.Fprintf(out, "Service:   %s\n", baseURL)

	res, err := client.Status(ctx)
	if err != nil {
		return err
	}
	if !res.LoggedIn {
		fmt.Fprintf(out, "Logged in: %sno%s\n", colorYellow, colorReset)
		return nil
	}
	fmt.Fprintf(out, "Logged in: %syes%s\n", colorGreen, colorReset)
	fmt.Fprintf(out, "Name:      %s\n", res.Name)
	fmt.Fprintf(out, "Email:     %s\n", res.Email)
	return nil
}

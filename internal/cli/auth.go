package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Auth.Login(cmd.Context(), clients.LoginRequest{Email: email, Password: password})
			if err != nil {
				return notify(app, err)
			}
			if res.Token == "" {
				return notify(app, errors.New("login failed: no token received"))
			}

			if err := app.Sessions.Save(session.Session{Token: res.Token, UserID: res.UserID, Role: res.Role}); err != nil {
				return notify(app, err)
			}

			if res.Role == session.RoleAdmin {
				fmt.Fprintln(app.Out, "Logged in as admin. Try 'storefront admin'.")
			} else {
				fmt.Fprintln(app.Out, "Logged in. Happy shopping!")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Auth.Register(cmd.Context(), clients.RegisterRequest{Name: name, Email: email, Password: password})
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Registered (user %d). Run 'storefront login' to sign in.\n", res.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(); err != nil {
				return notify(app, err)
			}
			fmt.Fprintln(app.Out, "Logged out.")
			return nil
		},
	}
}

func newSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Load()
			if errors.Is(err, session.ErrNoSession) {
				fmt.Fprintln(app.Out, "Not logged in.")
				return nil
			}
			if err != nil {
				return notify(app, err)
			}

			fmt.Fprintf(app.Out, "User ID: %d\nRole:    %s\n", s.UserID, s.Role)
			if claims, err := session.ParseClaims(s.Token); err == nil {
				if claims.Subject != "" {
					fmt.Fprintf(app.Out, "Subject: %s\n", claims.Subject)
				}
				if !claims.ExpiresAt.IsZero() {
					fmt.Fprintf(app.Out, "Expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
				}
			}
			return nil
		},
	}
}

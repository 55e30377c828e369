package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

// ErrLoginRequired is the client-side redirect to login: the guarded command
// never sends a request.
var ErrLoginRequired = errors.New("you are not logged in, run 'storefront login' first")

var ErrAdminRequired = errors.New("this command requires an admin session, run 'storefront login' as an admin")

// guardSession protects customer routes: without a persisted session the
// command is not run at all.
func guardSession(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, err := app.Sessions.Load()
		if errors.Is(err, session.ErrNoSession) {
			return ErrLoginRequired
		}
		return err
	}
}

// guardAdmin protects admin routes: an absent or non-admin session is sent
// back to login.
func guardAdmin(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := app.Sessions.Load()
		if errors.Is(err, session.ErrNoSession) {
			return ErrLoginRequired
		}
		if err != nil {
			return err
		}
		if !s.IsAdmin() {
			return ErrAdminRequired
		}
		return nil
	}
}

// describeErr maps failures to the message shown to the user. A 401 has
// already cleared the session by the time it surfaces here.
func describeErr(err error) string {
	switch {
	case errors.Is(err, clients.ErrUnauthorized):
		return "Session expired. Please log in again."
	default:
		var apiErr *clients.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return err.Error()
	}
}

// notifiedError marks an error already shown to the user so the entrypoint
// does not print it twice.
type notifiedError struct{ err error }

func (n *notifiedError) Error() string { return n.err.Error() }
func (n *notifiedError) Unwrap() error { return n.err }

// Notified reports whether err was already surfaced via notify.
func Notified(err error) bool {
	var n *notifiedError
	return errors.As(err, &n)
}

// notify prints a transient error notification; the command state is
// untouched and the user may retry manually.
func notify(app *App, err error) error {
	fmt.Fprintln(app.Err, "Error:", describeErr(err))
	return &notifiedError{err: err}
}

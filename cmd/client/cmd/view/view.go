// Package view renders client screens in the terminal and runs the
// access guard before each of them.
package view

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"banker/cmd/client/cmd/types"
	"banker/internal/app/client"
	"banker/internal/domain/access"
)

// JSONOutput switches screen output to JSON.
var JSONOutput bool

var (
	ErrNoApp       = errors.New("приложение не инициализировано")
	ErrNotSignedIn = errors.New("требуется вход: banker auth login")
)

var stdin = bufio.NewReader(os.Stdin)

// App pulls the application out of the command context.
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// Enter runs the guard for want. It returns the view that should actually
// be rendered: want itself, or the dashboard the guard redirected to.
func Enter(app *client.App, want access.View) (access.View, error) {
	d := app.Navigate(want)
	if d.Allow {
		return want, nil
	}

	switch {
	case d.RedirectTo == access.Login:
		return "", ErrNotSignedIn
	case access.ClassOf(want) == access.ClassAnonymous:
		id, _ := app.Session().Identity()
		return "", fmt.Errorf("вход уже выполнен как %s, сначала banker auth logout", id.Subject)
	default:
		Warn("нет доступа к %s, открываю %s", want, d.RedirectTo)
		return d.RedirectTo, nil
	}
}

func Success(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Printf("✓ "+format+"\n", args...)
}

func Warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func Header(title string) {
	color.New(color.FgCyan, color.Bold).Printf("=== %s ===\n\n", title)
}

func PrintJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Prompt reads a whole line; inner spaces are kept.
func Prompt(label string) string {
	fmt.Print(label + ": ")
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// Secret reads a password without echo.
func Secret(label string) (string, error) {
	fmt.Print(label + ": ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(b), nil
}

// OrPrompt returns flag when set and asks for the value otherwise.
func OrPrompt(flag, label string) string {
	if flag != "" {
		return flag
	}
	return Prompt(label)
}

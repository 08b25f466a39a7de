// ABOUTME: Shared plumbing for the human-facing CLI commands
// ABOUTME: Holds the stores, output streams and the TTY-aware confirmation prompt
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

// Env is what every command needs: the session stores and where to talk.
type Env struct {
	Accounts     *store.AccountStore
	Stakeholders *store.StakeholderStore
	Notices      *store.Recorder

	Out io.Writer
	In  *os.File
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

// failure turns the latest store error notification into a command error.
func (e *Env) failure(prefix string) error {
	if e.Notices != nil {
		if msg := e.Notices.Take(store.LevelError); msg != "" {
			return fmt.Errorf("%s: %s", prefix, msg)
		}
	}
	return fmt.Errorf("%s", prefix)
}

// load makes sure the account cache is populated.
func (e *Env) load(ctx context.Context) error {
	if e.Accounts.State() == store.StateReady {
		return nil
	}
	if !e.Accounts.Refresh(ctx) {
		return e.failure("failed to load accounts")
	}
	return nil
}

// confirm asks a yes/no question when stdin is a terminal. Non-interactive
// runs are treated as confirmed.
func (e *Env) confirm(prompt string) bool {
	in := e.In
	if in == nil {
		in = os.Stdin
	}
	if !term.IsTerminal(int(in.Fd())) {
		return true
	}

	fmt.Fprintf(e.out(), "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

var printer = message.NewPrinter(language.English)

func money(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func statusIcon(s models.Status) string {
	switch s {
	case models.StatusGood:
		return "🟢"
	case models.StatusWarning:
		return "🟡"
	default:
		return "🔴"
	}
}

// printValidation prints one line per failing field.
func printValidation(w io.Writer, err error) {
	if verrs, ok := err.(models.ValidationErrors); ok {
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(w, "  ✗ %s %s\n", f, verrs[f])
		}
	}
}

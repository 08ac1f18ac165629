package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"identikit/cli/internal/auth"
	"identikit/cli/internal/terminal"

	"github.com/pterm/pterm"
)

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function.
//
// The spinner automatically clears the line when stopped.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// primitive protection against very long lines
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// spinnerFrames are the stick-style frames used for in-flight network calls.
var spinnerFrames = []string{"|", "/", "-", "\\"}

// promptEmail asks for an email address and cleans the prompt line up after
// the user presses Enter.
func promptEmail() (string, error) {
	email, err := pterm.DefaultInteractiveTextInput.Show("Email")
	if err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)
	terminal.ClearPreviousLines(len("Email: ") + len(email))
	return email, nil
}

// promptPassword asks for a password with masked input and cleans the prompt
// line up after the user presses Enter.
func promptPassword(label string) (string, error) {
	password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show(label)
	if err != nil {
		return "", err
	}
	terminal.ClearPreviousLines(len(label) + 2 + len(password))
	return password, nil
}

// renderFormErrors prints the messages of a failed form result as a bullet list.
func renderFormErrors(result auth.FormResult) {
	for _, msg := range result.Errors {
		pterm.Println("  • " + msg)
	}
	pterm.Println()
}

// renderClaimsTable prints the principal's claims as a two-column table.
func renderClaimsTable(p *auth.Principal) {
	data := pterm.TableData{{"Claim", "Value"}}
	for _, c := range p.Claims() {
		data = append(data, []string{c.Type, c.Value})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// whoAmIPhrases greet the authenticated user on login and whoami.
var whoAmIPhrases = []string{
	"You are signed in as %s",
	"Hello, %s 👋",
	"Session active for %s",
	"Logged in as %s",
}

// greeting picks a greeting phrase for the given account.
func greeting(account string) string {
	return fmt.Sprintf(whoAmIPhrases[rand.Intn(len(whoAmIPhrases))], account)
}

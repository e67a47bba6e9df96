package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdinArg in place of a password means "read it interactively".
const stdinArg = "-"

// prompter reads passwords for one command invocation. Successive reads share
// a buffered reader so piped input can carry several lines.
type prompter struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{cmd: cmd}
}

// resolve returns arg unless it is "-", in which case it reads a password.
func (p *prompter) resolve(arg, prompt string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}

	if p.cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(p.cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(p.cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.cmd.InOrStdin())
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

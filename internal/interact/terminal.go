// Package interact implements the scaffold interaction port on a terminal.
package interact

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/locko/rtools/internal/output"
)

// Terminal talks to the user through stdin/stdout.
type Terminal struct {
	// Name, when set, is returned by PromptForName without asking.
	Name string

	// Open launches Editor on the revealed file.
	Open   bool
	Editor string

	// Interactive selects the bubbletea prompt. Off a TTY a plain line is
	// read from In instead.
	Interactive bool

	In  io.Reader
	Out io.Writer
}

// NewTerminal creates a port on the process stdio.
func NewTerminal() *Terminal {
	return &Terminal{
		Interactive: output.IsInputTTY() && output.IsTTY(),
		In:          os.Stdin,
		Out:         os.Stdout,
	}
}

// PromptForName asks for a name pre-filled with defaultName. ok is false
// when the user dismissed the prompt.
func (t *Terminal) PromptForName(ctx context.Context, defaultName string) (string, bool, error) {
	if t.Name != "" {
		return t.Name, true, nil
	}
	if t.Interactive {
		return t.promptTUI(ctx, defaultName)
	}
	return t.promptLine(defaultName)
}

func (t *Terminal) promptTUI(ctx context.Context, defaultName string) (string, bool, error) {
	m := newNamePromptModel("Name:", defaultName)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("running name prompt: %w", err)
	}

	result := final.(namePromptModel)
	if result.cancelled {
		return "", false, nil
	}
	return result.value, true, nil
}

// promptLine reads one line. An empty line accepts defaultName, EOF before
// any input cancels. The name is used as typed.
func (t *Terminal) promptLine(defaultName string) (string, bool, error) {
	fmt.Fprintf(t.Out, "Name [%s]: ", defaultName)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading name: %w", err)
	}
	if line == "" {
		return "", false, nil
	}

	name := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if name == "" {
		return defaultName, true, nil
	}
	return name, true, nil
}

// RevealFile reports the created file and, with Open set, opens it in the
// configured editor.
func (t *Terminal) RevealFile(ctx context.Context, path string) error {
	fmt.Fprintln(t.Out, output.FormatCheckmark(output.StyleNoun.Render(path)))

	if !t.Open {
		return nil
	}
	args := strings.Fields(t.Editor)
	if len(args) == 0 {
		output.Warn("no editor configured, set editor in config or RTOOLS_EDITOR")
		return nil
	}

	output.Debug("launching editor", "command", args[0], "path", path)
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = t.Out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening %s with %s: %w", path, args[0], err)
	}
	return nil
}

// NotifyError logs msg at error level.
func (t *Terminal) NotifyError(msg string) {
	output.Error(msg)
}

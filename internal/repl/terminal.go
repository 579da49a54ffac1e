package repl

import (
	"bufio"
	"io"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"

	"github.com/robalobadob/wordle/apps/solver/internal/input"
)

// Terminal reads lines with editing and history from an interactive tty.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal opens a readline session on stdin.
func NewTerminal() (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(input.TokenReset),
			readline.PcItem(input.TokenExit),
		),
	})
	if err != nil {
		return nil, err
	}
	return &Terminal{rl: rl}, nil
}

// ReadLine returns the next line. Ctrl+C on an empty line behaves like EOF;
// with text typed it just discards the line.
func (t *Terminal) ReadLine() (string, error) {
	for {
		line, err := t.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error { return t.rl.Close() }

// Confirm asks a yes/no question with promptui. Anything but yes is no.
func Confirm(label string) bool {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := p.Run()
	return err == nil
}

// Scanner reads plain lines, for piped input.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner { return &Scanner{s: bufio.NewScanner(r)} }

// ReadLine returns the next line or io.EOF.
func (s *Scanner) ReadLine() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

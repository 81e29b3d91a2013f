package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Prompter asks questions on out and reads answers from in, re-asking until
// the answer is valid.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

func NewPrompter(in io.Reader, out io.Writer, log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prompter{in: bufio.NewReader(in), out: out, log: log}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Float prompts until a number within b is entered.
func (p *Prompter) Float(msg string, b Bounds) (float64, error) {
	for {
		fmt.Fprint(p.out, msg)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		v, err := ParseFloat(line, b)
		if err == nil {
			return v, nil
		}
		p.log.Debug("rejected input", "input", line, "error", err)
		var re *RangeError
		if errors.As(err, &re) {
			fmt.Fprintf(p.out, "error: %s\n", re.Error())
		} else {
			fmt.Fprintln(p.out, "error: please enter a valid number")
		}
	}
}

// Choice prompts until one of options is entered and returns it.
func (p *Prompter) Choice(msg string, options []string) (string, error) {
	for {
		fmt.Fprint(p.out, msg)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		for _, o := range options {
			if line == o {
				return o, nil
			}
		}
		p.log.Debug("rejected selection", "input", line, "error", ErrInvalidChoice)
		fmt.Fprintf(p.out, "error: please enter %s\n", joinOptions(options))
	}
}

// Confirm asks a yes/no question. "y", "yes", "s" and "si" count as yes;
// anything else is no.
func (p *Prompter) Confirm(msg string) (bool, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "s", "si":
		return true, nil
	}
	return false, nil
}

func joinOptions(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}
	return strings.Join(options[:len(options)-1], ", ") + " or " + options[len(options)-1]
}

// Package prompt asks the user for values that were not given as flags. It
// reads line-oriented answers from any io.Reader so commands can be driven
// from tests or pipes.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Ask prints label and returns the first non-blank answer, trimmed.
func (p *Prompter) Ask(label string) (string, error) {
	for {
		fmt.Fprintf(p.w, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
		}
		if line != "" {
			return line, nil
		}
	}
}

// Select presents items as a numbered list and returns the chosen item. The
// answer may be the item number or the item itself (case-insensitive).
func (p *Prompter) Select(label string, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("nothing to select for %s", strings.ToLower(label))
	}

	fmt.Fprintf(p.w, "%s:\n", label)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(items))

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	if num, convErr := strconv.Atoi(line); convErr == nil {
		if num < 1 || num > len(items) {
			return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
		}
		return items[num-1], nil
	}

	for _, item := range items {
		if strings.EqualFold(line, item) {
			return item, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; an empty read at EOF yields ErrNoInput.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

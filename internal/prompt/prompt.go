package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when a question needs an answer and none can be read.
var ErrNoInput = errors.New("no answer available")

// Asker asks questions on w and reads one answer per line from r.
// With NonInteractive set, every question takes its default without reading.
type Asker struct {
	reader         *bufio.Reader
	w              io.Writer
	NonInteractive bool
}

// NewAsker creates an Asker reading from r and writing prompts to w.
func NewAsker(r io.Reader, w io.Writer) *Asker {
	return &Asker{reader: bufio.NewReader(r), w: w}
}

// Ask prints question with def in brackets and returns the answer, or def
// when the answer is empty. validate, if non-nil, checks the final value.
func (a *Asker) Ask(question, def string, validate func(string) error) (string, error) {
	if a.NonInteractive {
		if def == "" {
			return "", fmt.Errorf("%w for %q: pass it as a flag", ErrNoInput, question)
		}
		return def, check(validate, def)
	}

	if def != "" {
		fmt.Fprintf(a.w, "? %s (%s): ", question, def)
	} else {
		fmt.Fprintf(a.w, "? %s: ", question)
	}

	answer, err := a.readLine()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(question), err)
	}
	if answer == "" {
		answer = def
	}
	if answer == "" {
		return "", fmt.Errorf("%s is required", strings.ToLower(question))
	}
	return answer, check(validate, answer)
}

// Select presents a numbered list and returns the selected index. An empty
// answer picks def.
func (a *Asker) Select(question string, items []string, def int) (int, error) {
	if def < 0 || def >= len(items) {
		def = 0
	}
	if a.NonInteractive {
		return def, nil
	}

	fmt.Fprintf(a.w, "\n%s\n", question)
	for i, item := range items {
		fmt.Fprintf(a.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(a.w, "Enter number [1-%d] (%d): ", len(items), def+1)

	line, err := a.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// still an answer; EOF with nothing read is ErrNoInput.
func (a *Asker) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
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

func check(validate func(string) error, v string) error {
	if validate == nil {
		return nil
	}
	return validate(v)
}

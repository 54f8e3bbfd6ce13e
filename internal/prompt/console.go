package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/initgen-labs/initgen/internal/wizard"
)

// Console prompts with numbered menus over plain reader/writer streams.
// It works without a terminal, which keeps piped and scripted runs going.
type Console struct {
	r *bufio.Reader
	w io.Writer
}

// NewConsole creates a Console prompter reading from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w}
}

// Select presents a numbered list. A blank line or EOF dismisses;
// an out-of-range answer re-prompts.
func (c *Console) Select(title string, items []wizard.SelectItem) (string, bool, error) {
	for {
		fmt.Fprintf(c.w, "\n%s\n", title)
		for i, item := range items {
			if item.Detail != "" {
				fmt.Fprintf(c.w, "  %d) %s (%s)\n", i+1, item.Label, item.Detail)
			} else {
				fmt.Fprintf(c.w, "  %d) %s\n", i+1, item.Label)
			}
		}
		fmt.Fprintf(c.w, "Enter number [1-%d], blank to cancel: ", len(items))

		line, eof, err := c.readLine()
		if err != nil {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(items) {
			fmt.Fprintf(c.w, "invalid selection %q: choose 1-%d\n", line, len(items))
			if eof {
				return "", false, nil
			}
			continue
		}
		return items[num-1].ID, true, nil
	}
}

// Input reads a free-text answer seeded with initial. A blank line
// accepts the seed; values rejected by validate re-prompt inline.
func (c *Console) Input(title, initial string, validate func(string) error) (string, bool, error) {
	for {
		if initial != "" {
			fmt.Fprintf(c.w, "\n%s [%s]: ", title, initial)
		} else {
			fmt.Fprintf(c.w, "\n%s: ", title)
		}

		line, eof, err := c.readLine()
		if err != nil {
			return "", false, err
		}
		if line == "" && eof {
			return "", false, nil
		}

		value := line
		if value == "" {
			value = initial
		}
		if validate != nil {
			if verr := validate(value); verr != nil {
				fmt.Fprintf(c.w, "%v\n", verr)
				if eof {
					return "", false, nil
				}
				continue
			}
		}
		return value, true, nil
	}
}

// PickFolder asks for a directory path, defaulting to the working directory.
func (c *Console) PickFolder(title string) (string, bool, error) {
	cwd, _ := os.Getwd()
	dir, ok, err := c.Input(title, cwd, nil)
	if err != nil || !ok {
		return "", ok, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolving directory %q: %w", dir, err)
	}
	return abs, true, nil
}

// readLine returns the next trimmed line. eof reports that the stream
// ended; a final unterminated line is still returned.
func (c *Console) readLine() (line string, eof bool, err error) {
	line, err = c.r.ReadString('\n')
	if err == io.EOF {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), false, nil
}

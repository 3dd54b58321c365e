// Package prompt runs the line-based questions whatnow asks on stdin.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/whatnow/internal/selector"
)

var (
	// ErrInputClosed indicates input ended before an answer was read.
	ErrInputClosed = errors.New("input closed")

	// ErrInvalidIndex indicates the answer was not an integer.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrIndexOutOfRange indicates the index does not name a project.
	ErrIndexOutOfRange = errors.New("index out of range")
)

var nameColor = color.New(color.FgCyan, color.Bold)

// Session reads answers from in and writes questions to out.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a Session over the given streams.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose asks about each candidate in order and returns the first one the
// user accepts. An answer starting with y or Y accepts; later candidates are
// not shown. ok is false when nothing was accepted.
func (s *Session) Choose(candidates []selector.Candidate) (name string, ok bool, err error) {
	for _, c := range candidates {
		fmt.Fprintf(s.out, "Is '%s' something you could do? [y/n] ", nameColor.Sprint(c.Project.Name))

		answer, err := s.readLine()
		if err != nil {
			return "", false, err
		}

		if strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y") {
			return c.Project.Name, true, nil
		}
	}
	return "", false, nil
}

// PickIndex prints a zero-indexed list of names and reads the index of one.
func (s *Session) PickIndex(names []string) (int, error) {
	fmt.Fprintln(s.out, "Increment which count?")
	for i, name := range names {
		fmt.Fprintf(s.out, "%2d) %s\n", i, name)
	}

	answer, err := s.readLine()
	if err != nil {
		return 0, err
	}

	answer = strings.TrimSpace(answer)
	index, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, answer)
	}
	if index < 0 || index >= len(names) {
		return 0, fmt.Errorf("%w: %d (have %d projects)", ErrIndexOutOfRange, index, len(names))
	}

	return index, nil
}

// readLine reads one line. A final line without a trailing newline still
// counts; end of input with nothing read is ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

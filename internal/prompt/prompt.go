package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// DefaultYes lists the answers accepted as confirmation.
	DefaultYes = []string{"yes", "y"}
	// DefaultNo lists the answers accepted as refusal.
	DefaultNo = []string{"N", "no", "No"}
)

// Asker answers a yes/no question.
type Asker interface {
	Confirm(message string) (bool, error)
}

// Always answers every question with the same value without reading input.
type Always bool

// Confirm returns the fixed answer.
func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}

// Confirmer asks questions on Out and reads answers line by line from In.
// Answers are matched exactly, so "Y" is neither yes nor no and the question
// is repeated.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
	yes []string
	no  []string
}

// New returns a Confirmer using the default answer sets.
func New(in io.Reader, out io.Writer) *Confirmer {
	return NewWithAnswers(in, out, DefaultYes, DefaultNo)
}

// NewWithAnswers returns a Confirmer with custom accepted answers.
func NewWithAnswers(in io.Reader, out io.Writer, yes, no []string) *Confirmer {
	if out == nil {
		out = io.Discard
	}
	return &Confirmer{in: bufio.NewReader(in), out: out, yes: yes, no: no}
}

// Confirm prints message with the accepted answers and blocks until one of
// them is entered. Reaching the end of input counts as a refusal.
func (c *Confirmer) Confirm(message string) (bool, error) {
	hint := "(" + strings.Join(c.yes, "/") + "|" + strings.Join(c.no, "/") + ")"
	for {
		fmt.Fprintf(c.out, "%s %s : ", message, hint)

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}
		answer := strings.TrimRight(line, "\r\n")
		switch {
		case contains(c.yes, answer):
			return true, nil
		case contains(c.no, answer):
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return false, nil
		}
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

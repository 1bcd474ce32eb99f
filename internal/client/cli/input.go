package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSeededText behaves like GetSimpleText but shows a pre-filled opener the
// user continues; the returned text is the seed plus the typed line. An empty
// seed degrades to a plain prompt.
func GetSeededText(reader *bufio.Reader, prompt, seed string, w io.Writer) (string, error) {
	if seed == "" {
		return GetSimpleText(reader, prompt, w)
	}
	if _, err := fmt.Fprint(w, prompt+"\n> "+seed); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return seed + strings.TrimSpace(line), nil
}

// GetChoice prompts for one of the given options and reads until the user
// enters a valid number or an exact option text. Empty input picks def.
func GetChoice(reader *bufio.Reader, prompt string, options []string, def string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		marker := " "
		if opt == def {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, opt)
	}

	for {
		fmt.Fprint(w, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		choice := strings.TrimSpace(line)
		if choice == "" {
			return def, nil
		}
		for i, opt := range options {
			if choice == opt || choice == fmt.Sprint(i+1) {
				return opt, nil
			}
		}
		fmt.Fprintln(w, "Please pick one of the listed options.")
	}
}

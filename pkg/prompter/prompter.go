package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	in                = bufio.NewReader(os.Stdin)
	out     io.Writer = os.Stdout
	stdinFd           = int(os.Stdin.Fd())
)

// SetIO replaces stdin and stdout, mostly for tests
func SetIO(r io.Reader, w io.Writer) {
	in = bufio.NewReader(r)
	out = w
	stdinFd = -1
}

func readLine() (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptString prints label and reads one trimmed line
func PromptString(label string) (string, error) {
	fmt.Fprint(out, label)
	return readLine()
}

// PromptPassword reads a line without echo when stdin is a terminal
func PromptPassword(label string) (string, error) {
	fmt.Fprint(out, label)
	if stdinFd >= 0 && term.IsTerminal(stdinFd) {
		pw, err := term.ReadPassword(stdinFd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return readLine()
}

// PromptConfirm asks a yes/no question
func PromptConfirm(label string) (bool, error) {
	fmt.Fprint(out, label+" (y/n) ")
	answer, err := readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// PromptSelect lists options numbered from 1 and returns the chosen index
func PromptSelect(label string, options []string) (int, error) {
	fmt.Fprintln(out, label)
	for i, opt := range options {
		fmt.Fprintf(out, "%d) %s\n", i+1, opt)
	}
	fmt.Fprint(out, "Select option: ")

	answer, err := readLine()
	if err != nil {
		return -1, err
	}
	selection, err := strconv.Atoi(answer)
	if err != nil || selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection %q", answer)
	}
	return selection - 1, nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd задан, если stdin - терминал: тогда пароль читается без эха
	fd int
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

func (p *prompter) say(message string) {
	if message != "" {
		fmt.Fprintln(p.out, message)
	}
}

func (p *prompter) lineIfEmpty(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(p.out, label)
	return p.readLine()
}

func (p *prompter) secret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if p.fd < 0 {
		return p.readLine()
	}

	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	// Последняя строка без перевода строки тоже считается вводом
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// isTerminal checks if stdin is a terminal (interactive) or a pipe
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readLine reads a single trimmed line from stdin (piped input)
func readLine(what string) (string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return "", fmt.Errorf("no %s provided via stdin", what)
}

// Confirm shows a yes/no confirmation dialog using huh
func Confirm(prompt string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// TextInput prompts for a single value. validate may be nil.
// If stdin is piped, reads one line from stdin instead.
func TextInput(title, description, placeholder string, validate func(string) error) (string, error) {
	if !isTerminal() {
		value, err := readLine("value")
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(value); err != nil {
				return "", err
			}
		}
		return value, nil
	}

	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

// SecretInput prompts for a secret with masked input
// If stdin is piped, reads from stdin. Otherwise shows TUI.
func SecretInput(title, placeholder string) (string, error) {
	if !isTerminal() {
		return readLine("secret")
	}

	var secret string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				EchoMode(huh.EchoModePassword).
				Value(&secret).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("value cannot be empty")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(secret), nil
}

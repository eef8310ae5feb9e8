package main

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"github.com/saylorsolutions/tinylock/pkg/tinylock"
	"golang.org/x/term"
)

const passwordEnvVar = "TINYLOCK_PASSWORD"

// getPassword returns the password from the environment if set, otherwise
// prompts for it on the terminal without echo. The caller is responsible for
// zeroizing the returned bytes.
func getPassword(confirm bool) ([]byte, error) {
	if env := os.Getenv(passwordEnvVar); env != "" {
		password := make([]byte, len(env))
		copy(password, env)
		return password, nil
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		return nil, err
	}
	if !confirm {
		return password, nil
	}

	again, err := readPassword("Confirm password: ")
	if err != nil {
		tinylock.Zero(password)
		return nil, err
	}
	defer tinylock.Zero(again)
	if subtle.ConstantTimeCompare(password, again) != 1 {
		tinylock.Zero(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

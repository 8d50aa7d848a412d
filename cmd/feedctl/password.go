package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dtroode/gophfeed/internal/model"
)

// readPassword reads the password from passwordFile, or prompts on the
// terminal with echo disabled when passwordFile is empty or "-".
func readPassword(passwordFile string, stdin *os.File, stderr io.Writer) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		return readPasswordFile(passwordFile)
	}

	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", model.Errorf(model.KindValidation, "read password", "no terminal for the password prompt (use --password-file)")
	}

	fmt.Fprint(stderr, "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func readPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read password file: %w", err)
	}
	password := strings.TrimRight(string(data), "\r\n")
	if password == "" {
		return "", model.Errorf(model.KindValidation, "read password", "password file %s is empty", path)
	}
	return password, nil
}

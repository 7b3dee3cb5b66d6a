package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var (
	inputFile = os.Stdin
)

func guidedInitialization(config *Config) error {
	scanner := bufio.NewScanner(inputFile)

	input, err := ask(scanner, fmt.Sprintf("Enter hub endpoint [default: %s]", config.Endpoint))
	if err != nil {
		return err
	}
	if input != "" {
		config.Endpoint = input
	}

	input, err = ask(scanner, "Upload folders file by file instead of in one commit? (y/N)")
	if err != nil {
		return err
	}
	config.PerFileUpload = strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")

	input, err = ask(scanner, fmt.Sprintf("Enter upload commit message [default: %s]", config.CommitMessage))
	if err != nil {
		return err
	}
	if input != "" {
		config.CommitMessage = input
	}

	return nil
}

func ask(scanner *bufio.Scanner, prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("could not read user input: %w", err)
		}
		return "", nil // EOF or closed input
	}
	return strings.TrimSpace(scanner.Text()), nil
}

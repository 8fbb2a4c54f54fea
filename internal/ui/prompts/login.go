package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptCredentials asks for the username and password used to build the
// authorization token.
func PromptCredentials() (string, string, error) {
	var username, password string

	err := huh.NewInput().
		Title("Username:").
		Value(&username).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("username is required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", "", err
	}

	err = huh.NewInput().
		Title("Password:").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(username), password, nil
}

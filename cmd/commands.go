package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pg360/internal/auth"
	"pg360/internal/storage"

	"github.com/AlecAivazis/survey/v2"
)

// SetPassword handles the set-password subcommand.
func SetPassword(args []string) error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	fc, err := LoadFileConfig(configDir)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("set-password", flag.ContinueOnError)
	authFile := fs.String("auth-file",
		firstNonEmpty(os.Getenv("PG360_AUTH_FILE"), fc.AuthFile, filepath.Join(configDir, "auth.secret")),
		"Path to the admin credential file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pg360-admin set-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates the admin credential file with a hashed password (Argon2id).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !stdinIsTerminal() {
		return errors.New("set-password needs an interactive terminal")
	}

	var answers struct {
		User     string
		Password string
		Confirm  string
	}
	questions := []*survey.Question{
		{
			Name:      "user",
			Prompt:    &survey.Input{Message: "Usuário:"},
			Validate:  survey.Required,
			Transform: survey.TransformString(strings.TrimSpace),
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Senha:"},
			Validate: survey.Required,
		},
		{
			Name:     "confirm",
			Prompt:   &survey.Password{Message: "Confirme a senha:"},
			Validate: survey.Required,
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	if answers.Password != answers.Confirm {
		return errors.New("passwords do not match")
	}

	if err := auth.WriteCredentials(*authFile, answers.User, answers.Password); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Credenciais gravadas em %s\n", *authFile)
	return nil
}

// Logout handles the logout subcommand.
func Logout(args []string) error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	statePath := fs.String("state", filepath.Join(configDir, "state.db"), "Path to the local SQLite state file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*statePath); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Nenhuma sessão ativa.")
		return nil
	}
	store, err := storage.Open(*statePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := auth.Logout(store); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Sessão encerrada.")
	return nil
}

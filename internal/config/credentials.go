package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables holding the Notion credentials.
const (
	EnvNotionToken    = "NOTION_TOKEN"
	EnvNotionDatabase = "NOTION_DATABASE"
)

// ErrMissingCredential is returned when a required variable is unset.
var ErrMissingCredential = errors.New("missing credential")

// Credentials holds the secrets needed to reach the expense database.
type Credentials struct {
	NotionToken string
	DatabaseID  string
}

// LoadCredentials loads envFile into the process environment, if it exists,
// and reads the Notion credentials. Variables already set take precedence
// over the file.
func LoadCredentials(envFile string) (Credentials, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	creds := Credentials{
		NotionToken: os.Getenv(EnvNotionToken),
		DatabaseID:  os.Getenv(EnvNotionDatabase),
	}
	if creds.NotionToken == "" {
		return Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredential, EnvNotionToken)
	}
	if creds.DatabaseID == "" {
		return Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredential, EnvNotionDatabase)
	}
	return creds, nil
}

// EnvTemplate is written as .env.example by `caelum init`.
const EnvTemplate = EnvNotionToken + "=secret_xxx\n" + EnvNotionDatabase + "=00000000000000000000000000000000\n"

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jebin2/hfsync/internal/logging"
	"github.com/jebin2/hfsync/internal/util"
)

const (
	EnvToken  = "HF_TOKEN"
	EnvRepoID = "HF_REPO_ID"
)

var (
	configFilePath       = filepath.Join(util.ConfigDir, "config.toml")
	defaultEndpoint      = "https://huggingface.co"
	defaultCommitMessage = "Upload media"
)

var (
	ErrMissingToken  = errors.New("environment variable HF_TOKEN is not set")
	ErrMissingRepoID = errors.New("environment variable HF_REPO_ID is not set")
)

// Config is immutable after Get returns. Token and RepoID come from the
// environment only and are never written to the config file.
type Config struct {
	Token  string `toml:"-"`
	RepoID string `toml:"-"`

	Endpoint      string `toml:"endpoint"`
	PerFileUpload bool   `toml:"per_file_upload"`
	CommitMessage string `toml:"commit_message"`
}

// Get loads the optional settings from the config file, fills in the required
// credentials from the environment and validates the result.
func Get() (Config, error) {
	c, err := load(false)
	if err != nil {
		return c, err
	}
	c.Token = os.Getenv(EnvToken)
	c.RepoID = os.Getenv(EnvRepoID)
	return c, c.Validate()
}

// InitInteractive creates the config file with guided input when it does not
// exist yet. Credentials are not touched, so it works without HF_TOKEN set.
func InitInteractive() (Config, error) {
	return load(true)
}

func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.RepoID == "" {
		return ErrMissingRepoID
	}
	return nil
}

func load(interactive bool) (Config, error) {
	c := Config{}
	f, err := os.Open(configFilePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return initConfig(interactive)
	case err != nil:
		return c, fmt.Errorf("could not open config file for reading '%s': %w", configFilePath, err)
	}

	_, err = toml.NewDecoder(f).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("could not decode config file '%s': %w", configFilePath, err)
	}
	return c, nil
}

func initConfig(interactive bool) (Config, error) {
	c := initialConfig()
	if interactive {
		err := guidedInitialization(&c)
		if err != nil {
			return c, fmt.Errorf("could not initialize config interactively: %w", err)
		}
	}
	return c, c.persist()
}

func (c *Config) persist() error {
	f, err := util.OpenWithParents(configFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open config file for writing '%s': %w", configFilePath, err)
	}

	logging.Debugf("Persisting config file to '%s'", configFilePath)
	err = toml.NewEncoder(f).Encode(c)
	if err != nil {
		return fmt.Errorf("could not persist config to file '%s': %w", configFilePath, err)
	}

	return nil
}

func initialConfig() Config {
	return Config{
		Endpoint:      defaultEndpoint,
		CommitMessage: defaultCommitMessage,
	}
}

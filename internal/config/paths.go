package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	appDirName        = "friendlist"
	configFileName    = "config.yaml"
	defaultRosterFile = "FriendList.txt"
)

func appConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("user config directory not found")
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultPath is where the client and friendctl look for config.yaml when no
// --config flag is given.
func DefaultPath() (string, error) {
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// RosterPath resolves the roster file. A relative roster_file is taken
// relative to the directory holding config.yaml.
func (c Config) RosterPath(configPath string) (string, error) {
	if c.RosterFile != "" {
		if filepath.IsAbs(c.RosterFile) || configPath == "" {
			return c.RosterFile, nil
		}
		return filepath.Join(filepath.Dir(configPath), c.RosterFile), nil
	}
	if configPath != "" {
		return filepath.Join(filepath.Dir(configPath), defaultRosterFile), nil
	}
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultRosterFile), nil
}

package util

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const Name = "quill"
const ConfigFileName = "config.yaml"

//go:embed config_default.yaml
var embeddedConfig []byte

type AppConfig struct {
	Conf struct {
		Storage  string `yaml:"storage"`  // "sqlite" or "file"
		DataFile string `yaml:"dataFile"` // storage file name, resolved like the config
		SortKey  string `yaml:"sortKey"`  // modified, title, created, archived
		SortAsc  bool   `yaml:"sortAsc"`
	}
}

func ReadConf() (*AppConfig, error) {

	c := &AppConfig{}

	// Try to resolve config file path (local first, then user dir)
	configPath := ResolveFilePath(ConfigFileName)

	var buf []byte
	var err error

	// Try to read from resolved path
	buf, err = os.ReadFile(configPath)
	if err != nil {
		// If file doesn't exist, use embedded config and create user config file
		log.Printf("Config file not found at %s, using embedded defaults", configPath)
		buf = embeddedConfig

		// Try to write default config to user config directory
		configDir, dirErr := GetConfigDir()
		if dirErr == nil {
			userConfigPath := configDir + "/" + ConfigFileName
			writeErr := os.WriteFile(userConfigPath, embeddedConfig, 0644)
			if writeErr != nil {
				log.Printf("Warning: could not write default config to %s: %v", userConfigPath, writeErr)
			} else {
				log.Printf("Created default config file at %s", userConfigPath)
			}
		}
	}

	err = yaml.Unmarshal(buf, c)
	if err != nil {
		return nil, fmt.Errorf("in config file: %w", err)
	}

	envStorage := os.Getenv("QUILL_STORAGE")
	envDataFile := os.Getenv("QUILL_DATAFILE")
	envSortKey := os.Getenv("QUILL_SORTKEY")
	envSortAsc := os.Getenv("QUILL_SORTASC")

	if envStorage != "" {
		c.Conf.Storage = envStorage
	}

	if envDataFile != "" {
		c.Conf.DataFile = envDataFile
	}

	if envSortKey != "" {
		c.Conf.SortKey = envSortKey
	}

	if envSortAsc == "true" {
		c.Conf.SortAsc = true
	}

	if c.Conf.Storage != "file" {
		c.Conf.Storage = "sqlite"
	}

	if c.Conf.DataFile == "" {
		if c.Conf.Storage == "file" {
			c.Conf.DataFile = "notes.json"
		} else {
			c.Conf.DataFile = "notes.db"
		}
	}

	return c, nil
}

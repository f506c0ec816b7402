package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Settings struct {
	Config         Config
	VerboseLogging bool

	// PutFile is a path to a delimited file to stage and copy into Table.
	PutFile string
	Table   string
	Append  bool

	// LoadTable is a table to read back out as delimited text.
	LoadTable string
}

// LoadSettings will take the flags and then parse, loadConfig is optional for testing purposes.
func LoadSettings(args []string, loadConfig bool) (*Settings, error) {
	var opts struct {
		ConfigFilePath string `short:"c" long:"config" description:"path to the config file"`
		Verbose        bool   `short:"v" long:"verbose" description:"debug logging" optional:"true"`
		Put            string `long:"put" description:"path to a delimited file to load into --table"`
		Table          string `long:"table" description:"target table for --put"`
		Append         bool   `long:"append" description:"append to the table instead of recreating it" optional:"true"`
		Load           string `long:"load" description:"table to read back out as delimited text"`
	}

	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	settings := &Settings{
		VerboseLogging: opts.Verbose,
		PutFile:        opts.Put,
		Table:          opts.Table,
		Append:         opts.Append,
		LoadTable:      opts.Load,
	}

	if loadConfig {
		config, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		if err = config.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate config: %w", err)
		}

		settings.Config = *config
	}

	return settings, nil
}

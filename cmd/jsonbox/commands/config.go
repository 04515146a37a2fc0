package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kuy/jsonbox-go/internal/constants"
	"github.com/kuy/jsonbox-go/pkg/boxclient"
)

const (
	configDirName  = ".jsonbox"
	configFileName = "config.yml"
)

// ErrUnknownConfigKey is returned by config set for keys the CLI does not read.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// settableKeys lists the keys config set accepts.
var settableKeys = []string{"box", "endpoint", "output", "timeout"}

// Config is the effective CLI configuration.
type Config struct {
	Box        string `json:"box"         yaml:"box"`
	Endpoint   string `json:"endpoint"    yaml:"endpoint"`
	Output     string `json:"output"      yaml:"output"`
	Timeout    string `json:"timeout"     yaml:"timeout"`
	Verbose    bool   `json:"verbose"     yaml:"verbose"`
	ConfigFile string `json:"config_file" yaml:"config_file"`
}

// DefaultConfigPath returns ~/.jsonbox/config.yml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func loadConfig() Config {
	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = NotAvailable
	}

	return Config{
		Box:        viper.GetString("box"),
		Endpoint:   boxclient.NormalizeEndpoint(viper.GetString("endpoint")),
		Output:     viper.GetString("output"),
		Timeout:    timeout.String(),
		Verbose:    viper.GetBool("verbose"),
		ConfigFile: configFile,
	}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and persist the box, endpoint and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputConfig(cmd.OutOrStdout(), viper.GetString("output"), loadConfig())
		},
	}
}

func outputConfig(w io.Writer, format string, config Config) error {
	switch format {
	case constants.FormatJSON:
		return outputJSON(w, config)
	case constants.FormatYAML:
		return outputYAML(w, config)
	case constants.FormatTable, "":
		box := config.Box
		if box == "" {
			box = NotAvailable
		}

		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		_ = table.Append("Box", box)
		_ = table.Append("Endpoint", config.Endpoint)
		_ = table.Append("Output", config.Output)
		_ = table.Append("Timeout", config.Timeout)
		_ = table.Append("Verbose", fmt.Sprint(config.Verbose))
		_ = table.Append("Config File", config.ConfigFile)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist a configuration value",
		Long:  "Write a value to the config file. Keys: box, endpoint, output, timeout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.ConfigFileUsed()
			if path == "" {
				var err error

				path, err = DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			err := setConfigValue(path, args[0], args[1])
			if err != nil {
				return err
			}

			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)

			return nil
		},
	}
}

// setConfigValue updates one key in the YAML file at path, keeping other keys.
func setConfigValue(path, key, value string) error {
	if !slices.Contains(settableKeys, key) {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	if key == "timeout" {
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	}

	if key == "output" && !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, value) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, value)
	}

	settings := map[string]interface{}{}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config file
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &settings)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		if settings == nil {
			settings = map[string]interface{}{}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("reading %s: %w", path, err)
	}

	settings[key] = value

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	err = os.WriteFile(path, out, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix    = "COERCE"
	appID     = "coerce"
	logLevel  = "log_level"
	output    = "output"
	prompt    = "prompt"
	suitesDir = "suites"
	hostID    = "host_id"

	defaultLogLevel = "info"
	defaultOutput   = "text"
	defaultPrompt   = "JS>>> "
)

var outputFormats = []string{"text", "json", "yaml"}

var v = viper.New()

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("failed to read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %s: %w", configFile, err)
		}
		zap.S().Debugf("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	if err := validateOutputFormat(GetOutputFormat()); err != nil {
		return err
	}

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
			v.BindEnv(flagName, fmt.Sprintf("%s_%s", prefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		// and the other way around.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func validateOutputFormat(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, expected one of %s", format, strings.Join(outputFormats, ", "))
}

func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}

	return v.GetString(logLevel)
}

// GetOutputFormat returns text, json or yaml.
func GetOutputFormat() string {
	if !v.IsSet(output) {
		return defaultOutput
	}

	return strings.ToLower(v.GetString(output))
}

func GetPrompt() string {
	if !v.IsSet(prompt) {
		return defaultPrompt
	}

	return v.GetString(prompt)
}

// GetSuitesDir returns the directory of the conformance suites. Empty means the built-in suites.
func GetSuitesDir() string {
	return v.GetString(suitesDir)
}

func GetHostID() string {
	if !v.IsSet(hostID) {
		id, err := machineid.ProtectedID(appID)
		if err != nil {
			zap.S().Debugw("machine id not available", "error", err)
			id = uuid.New().String()
		}

		// save id for the next call
		v.Set(hostID, id)

		return id
	}

	return v.GetString(hostID)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the project options file name, without extension.
const configName = ".undercover"

// configType is the options file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for undercover settings.
const envPrefix = "UNDERCOVER"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"lcov":      "lcov",
	"path":      "path",
	"git-dir":   "git_dir",
	"compare":   "compare",
	"formatter": "formatters",
	"parallel":  "parallel",
	"log-level": "log_level",
}

// LoadConfig loads configuration from defaults, the options file, env vars
// and flags, in increasing order of precedence.
// If configPath is non-empty it is used as the explicit options file.
// Otherwise `.undercover` (YAML) is searched in the project directory.
// A missing options file is not an error. flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viperCfg.AutomaticEnv()

	if err := bindFlags(viperCfg, flags); err != nil {
		return nil, err
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(viperCfg.GetString("path"))
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	cfg.File = viperCfg.ConfigFileUsed()

	// A relative report path written in the options file names a file of the
	// project, wherever undercover is started from.
	if lcovFromFile(viperCfg, flags) && !filepath.IsAbs(cfg.LCOV) {
		cfg.LCOV = filepath.Join(cfg.Path, cfg.LCOV)
	}

	if len(cfg.Formatters) == 0 {
		cfg.Formatters = DefaultFormatters()
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	if err := cfg.ResolveLCOV(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func lcovFromFile(viperCfg *viper.Viper, flags *pflag.FlagSet) bool {
	if !viperCfg.InConfig("lcov") || viperCfg.GetString("lcov") == "" {
		return false
	}

	if flags != nil && flags.Changed("lcov") {
		return false
	}

	_, fromEnv := os.LookupEnv(envPrefix + "_LCOV")

	return !fromEnv
}

func bindFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := viperCfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("lcov", "")
	viperCfg.SetDefault("path", DefaultPath)
	viperCfg.SetDefault("git_dir", DefaultGitDir)
	viperCfg.SetDefault("compare", "")
	viperCfg.SetDefault("formatters", []string{})
	viperCfg.SetDefault("parallel", DefaultParallel)
	viperCfg.SetDefault("log_level", DefaultLogLevel)
}

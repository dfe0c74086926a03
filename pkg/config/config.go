package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

var (
	v               = viper.New()
	configDir       string
	configFilePath  string
	credentialsPath string
)

// getConfigDir returns the per-user config directory:
// ~/.config/framez/cli on unix, %LOCALAPPDATA%\framez\cli on windows
func getConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = home
		}
		return filepath.Join(appData, "framez", "cli"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "framez", "cli"), nil
}

// Init loads config.toml from configPath (or the default directory) on top
// of the defaults. FRAMEZ_* environment variables override file values,
// e.g. FRAMEZ_API_BASE_URL.
func Init(configPath string) error {
	var err error
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		configDir, err = getConfigDir()
		if err != nil {
			return err
		}
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	credentialsPath = filepath.Join(configDir, "credentials")

	v = viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("framez")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults()

	v.SetConfigFile(configFilePath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func setDefaults() {
	v.SetDefault("api.base_url", "http://localhost:8787")
	v.SetDefault("api.timeout", 30)
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(configDir, "framez-cli.log"))
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func GetString(key string) string {
	value := v.GetString(key)
	if key == "log.file" {
		return expandPath(value)
	}
	return value
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

// Set overrides a value for this process only
func Set(key string, value interface{}) {
	v.Set(key, value)
}

// SetString sets a value and persists the config file
func SetString(key string, value string) error {
	v.Set(key, value)
	return v.WriteConfigAs(configFilePath)
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFilePath() string {
	return configFilePath
}

// GetCredentialsPath returns the path of the stored session token
func GetCredentialsPath() string {
	return credentialsPath
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/khrees2412/careerpivot/internal/notify"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	ArchivePath string `mapstructure:"archive_path"`
	// Mail relay and account used for operator notifications
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	EmailSender    string `mapstructure:"email_sender"`
	EmailPassword  string `mapstructure:"email_password"`
	EmailRecipient string `mapstructure:"email_recipient"`
	// HTTP server
	ListenAddr  string   `mapstructure:"listen_addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	LogMode     string   `mapstructure:"log_mode"` // dev, prod, quiet
}

var AppConfig *Config

// ErrUnknownKey is returned by Set for keys outside Keys()
var ErrUnknownKey = errors.New("unknown config key")

const dirName = ".careerpivot"

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"email_sender":    "EMAIL_SENDER",
	"email_password":  "EMAIL_PASSWORD",
	"email_recipient": "EMAIL_RECIPIENT",
	"archive_path":    "CAREERPIVOT_ARCHIVE",
	"listen_addr":     "CAREERPIVOT_ADDR",
	"log_mode":        "CAREERPIVOT_LOG_MODE",
}

// secretKeys are never printed back to the user
var secretKeys = map[string]bool{"email_password": true}

// Initialize loads or creates the configuration file under the home directory
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeIn(filepath.Join(homeDir, dirName))
}

// InitializeIn loads or creates config.yaml inside configDir
func InitializeIn(configDir string) error {
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("archive_path", filepath.Join(configDir, "engineer_ai_assessments.json"))
	viper.SetDefault("smtp_host", notify.DefaultSMTPHost)
	viper.SetDefault("smtp_port", notify.DefaultSMTPPort)
	viper.SetDefault("email_sender", "")
	viper.SetDefault("email_password", "")
	viper.SetDefault("email_recipient", "")
	viper.SetDefault("listen_addr", ":8501")
	viper.SetDefault("cors_origins", []string{})
	viper.SetDefault("log_mode", "dev")

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return load()
}

func load() error {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ArchivePath = ExpandHome(cfg.ArchivePath)
	AppConfig = cfg
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# careerpivot configuration
# Where submitted assessments are archived (JSON array)
# archive_path: ~/.careerpivot/engineer_ai_assessments.json

# Operator notifications (keep this file secure!)
# EMAIL_SENDER, EMAIL_PASSWORD and EMAIL_RECIPIENT override these.
smtp_host: smtp.gmail.com
smtp_port: 465
email_sender: ""
email_password: ""
email_recipient: ""

# HTTP server
listen_addr: ":8501"
cors_origins: []

# Logging: dev, prod, quiet
log_mode: dev
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Keys lists every known configuration key, sorted
func Keys() []string {
	keys := []string{
		"archive_path", "smtp_host", "smtp_port", "email_sender", "email_password",
		"email_recipient", "listen_addr", "cors_origins", "log_mode",
	}
	sort.Strings(keys)
	return keys
}

func known(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// IsSecret reports whether a key holds a credential
func IsSecret(key string) bool {
	return secretKeys[key]
}

// Set updates a configuration value and writes the file
func Set(key, value string) error {
	if !known(key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	switch key {
	case "cors_origins":
		origins := []string{}
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		viper.Set(key, origins)
	default:
		viper.Set(key, value)
	}

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return load()
}

// Get retrieves a configuration value
func Get(key string) string {
	if key == "cors_origins" {
		return strings.Join(viper.GetStringSlice(key), ",")
	}
	return viper.GetString(key)
}

// Display returns a value safe to print: secrets only show whether they are set.
func Display(key string) string {
	v := Get(key)
	if !IsSecret(key) {
		return v
	}
	if v == "" {
		return "(not set)"
	}
	return "(configured)"
}

// MailCredentials reads the mail account at call time, so edits to the
// config file or environment apply to the next notification.
func MailCredentials() notify.Credentials {
	return notify.Credentials{
		Sender:    viper.GetString("email_sender"),
		Password:  viper.GetString("email_password"),
		Recipient: viper.GetString("email_recipient"),
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, dirName, "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration, loaded from config.toml
// next to the executable with environment overrides on top.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Auth   AuthConfig   `toml:"auth"`
	Import ImportConfig `toml:"import"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds filesystem locations.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// AuthConfig holds session-token settings.
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// ImportConfig holds the import pipeline settings. BackendBaseURL is where
// the submission engine sends per-record requests; by default it points back
// at this server's own API.
type ImportConfig struct {
	BackendBaseURL   string `toml:"backend_base_url"`
	SubmitDelayMs    int    `toml:"submit_delay_ms"`
	DefaultSubjectID int64  `toml:"default_subject_id"`
	DefaultCredits   int    `toml:"default_credits"`
	DefaultFee       int    `toml:"default_fee"`
	DefaultSchool    string `toml:"default_school"`
}

// DefaultConfig returns the configuration used when config.toml is absent.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8080,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Auth: AuthConfig{
			JWTSecret:     "change-me",
			TokenTTLHours: 24,
		},
		Import: ImportConfig{
			BackendBaseURL:   "",
			SubmitDelayMs:    300,
			DefaultSubjectID: 1,
			DefaultCredits:   3,
			DefaultFee:       0,
			DefaultSchool:    "SOICT",
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory, falling back
// to defaults when it does not exist, then applies .env and environment
// variable overrides.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, err
	}

	// .env is optional and never overrides variables already set.
	_ = godotenv.Load(filepath.Join(exeDir, ".env"))
	applyEnv(config)

	return config, nil
}

func applyEnv(config *AppConfig) {
	if v := os.Getenv("PORTAL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("PORTAL_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("PORTAL_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORTAL_BACKEND_URL"); v != "" {
		config.Import.BackendBaseURL = v
	}
}

// EnsureDataDir creates the data directory (with its uploads subdirectory)
// next to the executable and returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "uploads"), 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

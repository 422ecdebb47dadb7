package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "LINKEDINIFY_"

type Config struct {
	ServerURL        string
	DataDir          string
	DBPath           string
	LogPath          string
	LogLevel         string
	RequestTimeout   time.Duration
	HistoryPageSize  int
	BatchConcurrency int
	BatchFile        string
}

func Default() Config {
	dataDir := filepath.Join(userConfigDir(), "linkedinify")
	return Config{
		ServerURL:        "http://localhost:8080/api/v1",
		DataDir:          dataDir,
		DBPath:           filepath.Join(dataDir, "session.db"),
		LogPath:          filepath.Join(dataDir, "debug.log"),
		LogLevel:         "info",
		RequestTimeout:   30 * time.Second,
		HistoryPageSize:  20,
		BatchConcurrency: 4,
	}
}

// Load builds a Config from defaults, then a .env file (if any) and
// LINKEDINIFY_* environment variables, then command-line flags. Later
// sources win.
func Load(args []string) (Config, error) {
	cfg := Default()

	// A missing .env file is normal.
	_ = godotenv.Load()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := getenv(envPrefix + "DATA_DIR"); v != "" {
		c.setDataDir(v)
	}
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv(envPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %sTIMEOUT: %w", envPrefix, err)
		}
		c.RequestTimeout = d
	}
	if v := getenv(envPrefix + "HISTORY_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %sHISTORY_PAGE_SIZE: %w", envPrefix, err)
		}
		c.HistoryPageSize = n
	}
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("linkedinify", flag.ContinueOnError)
	server := fs.String("server", c.ServerURL, "backend base URL")
	dataDir := fs.String("data", c.DataDir, "directory for the session database and debug log")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&c.RequestTimeout, "timeout", c.RequestTimeout, "per-request timeout")
	fs.IntVar(&c.BatchConcurrency, "concurrency", c.BatchConcurrency, "parallel requests in batch mode")
	fs.StringVar(&c.BatchFile, "batch", "", "transform each line of FILE (- for stdin) and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.ServerURL = strings.TrimRight(*server, "/")
	if *dataDir != c.DataDir {
		c.setDataDir(*dataDir)
	}
	if c.BatchConcurrency < 1 {
		c.BatchConcurrency = 1
	}
	return nil
}

func (c *Config) setDataDir(dir string) {
	c.DataDir = dir
	c.DBPath = filepath.Join(dir, "session.db")
	c.LogPath = filepath.Join(dir, "debug.log")
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

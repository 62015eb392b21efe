package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken   string `yaml:"slack_bot_token"`
	ReportChannelID string `yaml:"report_channel_id"`

	DBPath          string `yaml:"db_path"`
	ReportOutputDir string `yaml:"report_output_dir"`
	TablesPath      string `yaml:"tables_path"`

	LLMProvider     string `yaml:"llm_provider"`
	LLMModel        string `yaml:"llm_model"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`

	ReportSchedule   string  `yaml:"report_schedule"` // 5-field cron expression
	ReminderDay      string  `yaml:"reminder_day"`
	ReminderTime     string  `yaml:"reminder_time"`
	MondayCutoffTime string  `yaml:"monday_cutoff_time"`
	Timezone         string  `yaml:"timezone"`
	TeamName         string  `yaml:"team_name"`
	TopSKUCount      int     `yaml:"top_sku_count"`
	QCThresholdPct   float64 `yaml:"qc_detection_threshold_pct"`

	Location *time.Location `yaml:"-"` // computed from Timezone, not from YAML
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportOutputDir, "REPORT_OUTPUT_DIR")
	envOverride(&cfg.TablesPath, "TABLES_PATH")
	envOverride(&cfg.LLMProvider, "LLM_PROVIDER")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	envOverride(&cfg.ReportSchedule, "REPORT_SCHEDULE")
	envOverride(&cfg.ReminderDay, "REMINDER_DAY")
	envOverride(&cfg.ReminderTime, "REMINDER_TIME")
	envOverride(&cfg.MondayCutoffTime, "MONDAY_CUTOFF_TIME")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverride(&cfg.TeamName, "TEAM_NAME")
	envOverrideInt(&cfg.TopSKUCount, "TOP_SKU_COUNT")
	envOverrideFloat(&cfg.QCThresholdPct, "QC_DETECTION_THRESHOLD_PCT")

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "./reworkbot.db"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./reports"
	}
	if cfg.MondayCutoffTime == "" {
		cfg.MondayCutoffTime = "12:00"
	}
	if cfg.ReminderDay == "" {
		cfg.ReminderDay = "Friday"
	}
	if cfg.ReminderTime == "" {
		cfg.ReminderTime = "14:00"
	}
	if cfg.TeamName == "" {
		cfg.TeamName = "Production"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if cfg.TopSKUCount == 0 {
		cfg.TopSKUCount = 10
	}
	if cfg.QCThresholdPct == 0 {
		cfg.QCThresholdPct = 50
	}

	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	if _, _, err := parseClock(cfg.MondayCutoffTime); err != nil {
		log.Fatalf("invalid monday_cutoff_time '%s': %v", cfg.MondayCutoffTime, err)
	}
	if _, _, err := parseClock(cfg.ReminderTime); err != nil {
		log.Fatalf("invalid reminder_time '%s': %v", cfg.ReminderTime, err)
	}
	if cfg.TopSKUCount < 1 {
		log.Fatalf("invalid top_sku_count '%d': must be >= 1", cfg.TopSKUCount)
	}
	if cfg.QCThresholdPct < 0 || cfg.QCThresholdPct > 100 {
		log.Fatalf("invalid qc_detection_threshold_pct '%f': must be between 0 and 100", cfg.QCThresholdPct)
	}

	switch cfg.LLMProvider {
	case "":
		// Narrative summary disabled.
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatalf("anthropic_api_key is required when llm_provider=anthropic")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatalf("openai_api_key is required when llm_provider=openai")
		}
	default:
		log.Fatalf("llm_provider must be 'anthropic', 'openai' or empty, got '%s'", cfg.LLMProvider)
	}

	if cfg.TablesPath != "" {
		if _, err := LoadTables(cfg.TablesPath); err != nil {
			log.Fatalf("invalid tables_path '%s': %v", cfg.TablesPath, err)
		}
	}

	return cfg
}

// Tables returns the classification vocabularies the config points at, or
// the compiled-in defaults.
func (c Config) Tables() *Tables {
	if c.TablesPath == "" {
		return DefaultTables()
	}
	t, err := LoadTables(c.TablesPath)
	if err != nil {
		log.Fatalf("loading tables from '%s': %v", c.TablesPath, err)
	}
	return t
}

// SlackConfigured reports whether report delivery to Slack is possible.
func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.ReportChannelID != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideFloat(field *float64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func parseClock(s string) (int, int, error) {
	var hour, min int
	_, err := fmt.Sscanf(s, "%d:%d", &hour, &min)
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("time out of range: %02d:%02d", hour, min)
	}
	return hour, min, nil
}

// Load envs from .env
// Load YAML config
// Apply env overrides
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Search criteria
	TargetRoles []string `yaml:"target_roles"`
	Locations   []string `yaml:"locations"`

	//Scraper behavior
	MaxPagesPerSite int  `yaml:"max_pages_per_site"`
	DelayMinMs      int  `yaml:"delay_min_ms"`
	DelayMaxMs      int  `yaml:"delay_max_ms"`
	Headless        bool `yaml:"headless"`

	//Schedule expression consumed by the external cron wrapper
	ScrapeSchedule string `yaml:"scrape_schedule"`

	//Dashboard
	DashboardPort int `yaml:"dashboard_port"`

	//Paths
	DataPath string `yaml:"data_path"`

	//Credentials (all optional)
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	USAJobsAPIKey   string `yaml:"usajobs_api_key"`
	TelegramToken   string `yaml:"telegram_token"`
	TelegramChatID  int64  `yaml:"telegram_chat_id"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{Headless: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if roles := os.Getenv("TARGET_ROLES"); roles != "" {
		cfg.TargetRoles = splitList(roles)
	}

	if locations := os.Getenv("SEARCH_LOCATIONS"); locations != "" {
		cfg.Locations = splitList(locations)
	}

	if pages := os.Getenv("MAX_PAGES_PER_SITE"); pages != "" {
		n, err := strconv.Atoi(pages)
		if err != nil {
			log.Printf("Warning: Invalid MAX_PAGES_PER_SITE %q, using default", pages)
		} else {
			cfg.MaxPagesPerSite = n
		}
	}

	if schedule := os.Getenv("SCRAPE_SCHEDULE"); schedule != "" {
		cfg.ScrapeSchedule = schedule
	}

	if port := os.Getenv("DASHBOARD_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			log.Printf("Warning: Invalid DASHBOARD_PORT %q, using default", port)
		} else {
			cfg.DashboardPort = n
		}
	}

	if path := os.Getenv("DATA_PATH"); path != "" {
		cfg.DataPath = path
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.AnthropicAPIKey = key
	}

	if key := os.Getenv("USAJOBS_API_KEY"); key != "" {
		cfg.USAJobsAPIKey = key
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Printf("Warning: Invalid TELEGRAM_CHAT_ID %q, ignoring", chatID)
		} else {
			cfg.TelegramChatID = id
		}
	}

	//Set default values if not set
	if len(cfg.TargetRoles) == 0 {
		cfg.TargetRoles = []string{"marketing", "growth", "product manager", "business development"}
	}

	if len(cfg.Locations) == 0 {
		cfg.Locations = []string{"Remote", "United States", "San Francisco", "New York"}
	}

	if cfg.MaxPagesPerSite <= 0 {
		cfg.MaxPagesPerSite = 2
	}

	if cfg.DelayMinMs <= 0 {
		cfg.DelayMinMs = 3000
	}

	if cfg.DelayMaxMs <= cfg.DelayMinMs {
		cfg.DelayMaxMs = cfg.DelayMinMs + 5000
	}

	if cfg.ScrapeSchedule == "" {
		cfg.ScrapeSchedule = "0 */24 * * *"
	}

	if cfg.DashboardPort == 0 {
		cfg.DashboardPort = 3000
	}

	if cfg.DataPath == "" {
		cfg.DataPath = "data/jobs.csv"
	}

	return cfg
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

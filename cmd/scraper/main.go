package main

import (
	"context"
	"log"
	"os"
	"time"

	"jobtrend/internal/analyzer"
	"jobtrend/internal/config"
	"jobtrend/internal/scraper"
	"jobtrend/internal/store"
	"jobtrend/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Target roles: %v", cfg.TargetRoles)

	//init telegram bot (optional)
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram bot, continuing without: %v", err)
		} else {
			log.Println("🤖 Telegram bot initialized.")
		}
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🤖 JobTrend - Starting scraping cycle...")
	log.Printf("⏰ Time: %s", time.Now().Format(time.RFC1123))

	st := store.New(cfg.DataPath)
	runner := scraper.NewRunner(cfg, st)

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Printf("❌ Scraping failed: %v", err)
		if bot != nil {
			bot.SendError(err)
		}
		os.Exit(1)
	}

	stats := st.Stats()
	log.Println("\n📊 Scraping Summary:")
	log.Printf("✅ Total jobs in database: %d", stats.TotalJobs)
	log.Printf("🆕 New jobs today: %d", stats.RecentJobs)
	log.Printf("📦 Collected this run: %d (stored %d new)", summary.Collected, summary.Appended)
	if failures := summary.Failures(); failures > 0 {
		log.Printf("⚠️ Failed units: %d/%d", failures, len(summary.Units))
	}

	if bot != nil {
		skills := analyzer.TopSkills(st.ReadAll(), 10)
		if err := bot.SendRunSummary(summary, stats, skills); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}

	log.Println("🏁 Execution finished.")
}

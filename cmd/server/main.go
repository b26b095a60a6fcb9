package main

import (
	"fmt"
	"log"

	"jobtrend/internal/ai"
	"jobtrend/internal/config"
	"jobtrend/internal/dashboard"
	"jobtrend/internal/store"
)

func main() {
	cfg := config.Load()

	st := store.New(cfg.DataPath)
	client := ai.NewAnthropicClient(cfg.AnthropicAPIKey)

	r := dashboard.NewRouter(st, client)

	addr := fmt.Sprintf(":%d", cfg.DashboardPort)
	log.Printf("🌐 JobTrend dashboard running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"log"

	"github.com/ivanoskov/expenses_bot/internal/bot"
	"github.com/ivanoskov/expenses_bot/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	b, err := bot.NewBot(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
}

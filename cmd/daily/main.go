package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwei/macrowatch/internal/api/groq"
	"github.com/jwei/macrowatch/internal/api/twelvedata"
	"github.com/jwei/macrowatch/internal/config"
	"github.com/jwei/macrowatch/internal/market"
	"github.com/jwei/macrowatch/internal/news"
	"github.com/jwei/macrowatch/internal/notify"
	"github.com/jwei/macrowatch/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	ctx := context.Background()

	log.Info().Msg("Collecting quotes")
	quotes := market.NewDigest(
		twelvedata.NewClient(twelvedata.ClientOptions{APIKey: cfg.TwelveAPIKey}),
		nil,
	).Collect(ctx)

	log.Info().Msg("Fetching headlines")
	headlines := news.NewFetcher().TopHeadlines(ctx)

	date := report.CurrentDateLabel()

	analysis := ""
	if cfg.GroqAPIKey != "" {
		llm := groq.NewClient(groq.ClientOptions{APIKey: cfg.GroqAPIKey, Model: cfg.GroqModel})
		prompt := report.BuildDailyPrompt(date, quotes)
		if text, aerr := llm.GenerateCompletion(ctx, report.DailySystemPrompt, prompt); aerr != nil {
			log.Error().Err(aerr).Msg("Analysis failed, sending brief without it")
		} else {
			analysis = text
		}
	} else {
		log.Warn().Msg("GROQ_API_KEY not set, skipping analysis")
	}

	msg := report.FormatDailyMessage(date, quotes, headlines, analysis)

	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		log.Warn().Msg("Telegram not configured, printing brief to stdout")
		fmt.Println(msg)
		return
	}

	tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram")
	}
	if err := tg.Send(msg); err != nil {
		log.Fatal().Err(err).Msg("Delivery failed")
	}

	log.Info().Msg("Daily brief complete")
}

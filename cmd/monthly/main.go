package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwei/macrowatch/internal/api/fred"
	"github.com/jwei/macrowatch/internal/api/groq"
	"github.com/jwei/macrowatch/internal/api/multpl"
	"github.com/jwei/macrowatch/internal/api/nasdaqdata"
	"github.com/jwei/macrowatch/internal/config"
	"github.com/jwei/macrowatch/internal/indicator"
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

	resolver := indicator.NewResolver(indicator.Options{
		Series: fred.NewClient(fred.ClientOptions{
			APIKey:         cfg.FredAPIKey,
			RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		}),
		Page:    multpl.NewClient(multpl.ClientOptions{}),
		Dataset: nasdaqdata.NewClient(nasdaqdata.ClientOptions{APIKey: cfg.NasdaqAPIKey}),
		Overrides: indicator.Overrides{
			PMI:     cfg.PMIManual,
			PMIPrev: cfg.PMIPrev,
			CAPE:    cfg.CAPEManual,
		},
	})

	log.Info().Msg("Resolving indicators")
	resolved := resolver.ResolveAll(ctx)
	signals := indicator.ClassifyAll(resolved)
	regime := indicator.EvaluateComposite(signals)

	log.Info().
		Str("overall", string(regime.Overall)).
		Int("red", regime.Red).
		Int("yellow", regime.Yellow).
		Int("green", regime.Green).
		Bool("reverting", regime.Reverting).
		Msg("Composite regime")

	period := report.CurrentPeriodLabel()

	analysis := "AI analysis unavailable this month."
	if cfg.GroqAPIKey != "" {
		llm := groq.NewClient(groq.ClientOptions{APIKey: cfg.GroqAPIKey, Model: cfg.GroqModel})
		prompt := report.BuildAnalysisPrompt(period, signals)
		if text, aerr := llm.GenerateCompletion(ctx, report.AnalysisSystemPrompt, prompt); aerr != nil {
			log.Error().Err(aerr).Msg("Analysis failed, sending report without it")
		} else {
			analysis = text
		}
	} else {
		log.Warn().Msg("GROQ_API_KEY not set, skipping analysis")
	}

	parts := report.FormatMonthlyMessage(period, signals, resolved, regime, analysis)

	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		log.Warn().Msg("Telegram not configured, printing report to stdout")
		for _, part := range parts {
			fmt.Println(part)
		}
		return
	}

	tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram")
	}
	if err := tg.SendAll(parts); err != nil {
		log.Fatal().Err(err).Msg("Delivery failed")
	}

	log.Info().Msg("Monthly check complete")
}

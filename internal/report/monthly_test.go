package report

import (
	"strings"
	"testing"

	"github.com/jwei/macrowatch/models"
)

func sampleSignals() []models.ClassifiedSignal {
	return []models.ClassifiedSignal{
		{Kind: models.KindRate, Value: 4.33, Trend: "falling", Label: "falling", Color: models.ColorGreen},
		{Kind: models.KindYieldCurve, Value: 0.52, Label: "normal", Color: models.ColorGreen},
		{Kind: models.KindRecession, Value: 0.20, Label: "safe", Color: models.ColorGreen},
		{Kind: models.KindPMI, Value: 48.5, Label: "contraction", Trend: "falling", Color: models.ColorYellow},
		{Kind: models.KindValuation, Value: 37.0, Label: "expensive/caution", Color: models.ColorRed},
	}
}

func sampleResolved() map[models.Kind]*models.ResolvedIndicator {
	return map[models.Kind]*models.ResolvedIndicator{
		models.KindValuation: {Kind: models.KindValuation, Current: 37.0, Source: models.SourceFallback, Stale: true},
	}
}

func TestFormatMonthlyMessageSinglePart(t *testing.T) {
	regime := models.CompositeRegime{Red: 1, Yellow: 1, Green: 3, Overall: models.ColorYellow}

	parts := FormatMonthlyMessage("August 2026", sampleSignals(), sampleResolved(), regime, "Short analysis.")
	if len(parts) != 1 {
		t.Fatalf("FormatMonthlyMessage() returned %d parts, want 1", len(parts))
	}

	msg := parts[0]
	for _, want := range []string{
		"Monthly Market Environment Check · August 2026",
		"📌 Policy rate 4.33% · falling",
		"📌 Shiller CAPE 37.0 · expensive/caution (last known value)",
		"🟢 🟢 🟢 🟡 🔴",
		"Overall: 🟡 yellow",
		"Short analysis.",
		"not investment advice",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestFormatMonthlyMessageSplitsLongAnalysis(t *testing.T) {
	regime := models.CompositeRegime{Green: 5, Overall: models.ColorGreen}
	analysis := strings.Repeat("A very long analysis paragraph. ", 200)

	parts := FormatMonthlyMessage("August 2026", sampleSignals(), sampleResolved(), regime, analysis)
	if len(parts) != 2 {
		t.Fatalf("FormatMonthlyMessage() returned %d parts, want 2", len(parts))
	}
	if !strings.Contains(parts[0], "Five Indicators") {
		t.Error("first part missing the indicator summary")
	}
	if !strings.Contains(parts[1], "AI Analysis") {
		t.Error("second part missing the analysis block")
	}
}

func TestFormatMonthlyMessageRevertingWarning(t *testing.T) {
	regime := models.CompositeRegime{Red: 2, Overall: models.ColorRed, Reverting: true}
	signals := []models.ClassifiedSignal{
		{Kind: models.KindYieldCurve, Value: 0.15, Label: "reverting", Color: models.ColorRed, Reverting: true},
	}

	parts := FormatMonthlyMessage("August 2026", signals, nil, regime, "x")
	if !strings.Contains(parts[0], "inverted then reverted") {
		t.Error("message missing the reverting warning")
	}
}

func TestBuildAnalysisPromptReportsMissingData(t *testing.T) {
	prompt := BuildAnalysisPrompt("August 2026", nil)

	if n := strings.Count(prompt, "data missing"); n != 5 {
		t.Errorf("prompt has %d missing-data lines, want 5", n)
	}
	if !strings.Contains(prompt, "check CME FedWatch manually") {
		t.Error("prompt missing the rate fallback note")
	}
	if !strings.Contains(prompt, "Kostolany egg position") {
		t.Error("prompt missing the cycle section")
	}
}

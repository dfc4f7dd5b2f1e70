package report

import (
	"fmt"
	"strings"

	"github.com/jwei/macrowatch/models"
)

// Telegram caps messages at 4096 characters; split a little below that.
const telegramSplitLimit = 4000

// AnalysisSystemPrompt frames the model as the monthly analyst.
const AnalysisSystemPrompt = "You are an investment researcher with fifteen years of experience, " +
	"fluent in the Kostolany cycle model and macro analysis. Be direct, keep it short, " +
	"and only state what the data supports."

// signalByKind indexes signals for rendering; unavailable kinds are absent.
func signalByKind(signals []models.ClassifiedSignal) map[models.Kind]models.ClassifiedSignal {
	m := make(map[models.Kind]models.ClassifiedSignal, len(signals))
	for _, s := range signals {
		m[s.Kind] = s
	}
	return m
}

// promptLines renders one plain-text line per indicator for the model,
// with an explicit "data missing" line for unavailable ones.
func promptLines(signals []models.ClassifiedSignal) []string {
	byKind := signalByKind(signals)
	var lines []string

	if s, ok := byKind[models.KindRate]; ok {
		lines = append(lines, fmt.Sprintf("Policy rate: %.2f%%, direction: %s", s.Value, s.Trend))
	} else {
		lines = append(lines, "Policy rate: data missing, check CME FedWatch manually")
	}

	if s, ok := byKind[models.KindYieldCurve]; ok {
		status := s.Label
		if s.Reverting {
			status = "inverted then reverted to positive (most dangerous)"
		}
		lines = append(lines, fmt.Sprintf("Yield curve (10Y-2Y): %.2f%%, status: %s", s.Value, status))
	} else {
		lines = append(lines, "Yield curve: data missing")
	}

	if s, ok := byKind[models.KindRecession]; ok {
		lines = append(lines, fmt.Sprintf("Sahm rule: %.2f (%s)", s.Value, s.Label))
	} else {
		lines = append(lines, "Sahm rule: data missing")
	}

	if s, ok := byKind[models.KindPMI]; ok {
		lines = append(lines, fmt.Sprintf("Manufacturing PMI: %.1f (%s, %s)", s.Value, s.Label, s.Trend))
	} else {
		lines = append(lines, "Manufacturing PMI: data missing")
	}

	if s, ok := byKind[models.KindValuation]; ok {
		lines = append(lines, fmt.Sprintf("Shiller CAPE: %.1f (%s)", s.Value, s.Label))
	} else {
		lines = append(lines, "Shiller CAPE: data missing")
	}

	return lines
}

// BuildAnalysisPrompt assembles the monthly analysis prompt from the
// classified signals.
func BuildAnalysisPrompt(period string, signals []models.ClassifiedSignal) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Based on the market indicators for %s below, write the monthly analysis.\n\n", period)
	sb.WriteString("[Five indicators]\n")
	sb.WriteString(strings.Join(promptLines(signals), "\n"))
	sb.WriteString("\n\nCover these four parts in order:\n\n")
	sb.WriteString("**Part 1: Verdict**\n")
	sb.WriteString("Is this a green light (hold with confidence), yellow light (wait and see), or red light (be alert)? One sentence of reasoning.\n\n")
	sb.WriteString("**Part 2: Kostolany egg position**\n")
	sb.WriteString("Where are we in the cycle?\n")
	sb.WriteString("- Position 1: bottom (rates peaked, money tightest, sentiment worst)\n")
	sb.WriteString("- Position 2: recovery (rates start falling, equities grind up)\n")
	sb.WriteString("- Position 3: top (money everywhere, everyone is in stocks)\n")
	sb.WriteString("- Position 4: decline (rates rising, equities falling)\n")
	sb.WriteString("Explain why this position and what it implies.\n\n")
	sb.WriteString("**Part 3: Concrete actions**\n")
	sb.WriteString("For a long-term holder of VT, QQQ, SOXX and 0050:\n")
	sb.WriteString("- This month's recurring buy: continue / pause / add?\n")
	sb.WriteString("- Any allocation changes?\n")
	sb.WriteString("- Anything specific to watch out for?\n\n")
	sb.WriteString("**Part 4: What to watch next month**\n")
	sb.WriteString("List 3-4 indicators or events most worth tracking next month.\n\n")
	sb.WriteString("Plain language, under 400 words, no filler.")

	return sb.String()
}

// messageLines renders one HTML line per available indicator for Telegram.
func messageLines(signals []models.ClassifiedSignal, resolved map[models.Kind]*models.ResolvedIndicator) []string {
	byKind := signalByKind(signals)
	var lines []string

	stale := func(kind models.Kind) string {
		if ind, ok := resolved[kind]; ok && ind.Stale {
			return " (last known value)"
		}
		return ""
	}

	if s, ok := byKind[models.KindRate]; ok {
		lines = append(lines, fmt.Sprintf("📌 Policy rate %.2f%% · %s", s.Value, s.Trend))
	}
	if s, ok := byKind[models.KindYieldCurve]; ok {
		status := s.Label
		if s.Reverting {
			status = "⚠️ inverted then reverted"
		}
		lines = append(lines, fmt.Sprintf("📌 Yield curve %.2f%% · %s", s.Value, status))
	}
	if s, ok := byKind[models.KindRecession]; ok {
		lines = append(lines, fmt.Sprintf("📌 Sahm rule %.2f · %s", s.Value, s.Label))
	}
	if s, ok := byKind[models.KindPMI]; ok {
		lines = append(lines, fmt.Sprintf("📌 PMI %.1f · %s %s%s", s.Value, s.Label, s.Trend, stale(models.KindPMI)))
	}
	if s, ok := byKind[models.KindValuation]; ok {
		lines = append(lines, fmt.Sprintf("📌 Shiller CAPE %.1f · %s%s", s.Value, s.Label, stale(models.KindValuation)))
	}

	return lines
}

const sourceLinks = "<b>📎 Sources</b>\n" +
	"• <a href='https://www.cmegroup.com/markets/interest-rates/cme-fedwatch-tool.html'>Rate expectations · CME FedWatch</a>\n" +
	"• <a href='https://fred.stlouisfed.org/graph/?g=A9Ed'>Yield curve · FRED (10Y-2Y)</a>\n" +
	"• <a href='https://fred.stlouisfed.org/series/SAHMREALTIME'>Sahm rule · FRED</a>\n" +
	"• <a href='https://www.ismworld.org/supply-management-news-and-reports/reports/ism-report-on-business/pmi/'>ISM PMI · ismworld.org</a>\n" +
	"• <a href='https://www.multpl.com/shiller-pe'>Shiller CAPE · multpl.com</a>"

// FormatMonthlyMessage renders the monthly report as one or two Telegram
// HTML messages, splitting when the full text would exceed the limit.
func FormatMonthlyMessage(
	period string,
	signals []models.ClassifiedSignal,
	resolved map[models.Kind]*models.ResolvedIndicator,
	regime models.CompositeRegime,
	analysis string,
) []string {
	lines := messageLines(signals, resolved)
	indicatorsStr := strings.Join(lines, "\n")
	if indicatorsStr == "" {
		indicatorsStr = "(no indicator data — set FRED_API_KEY)"
	}

	var lights []string
	for _, s := range signals {
		lights = append(lights, s.Color.Emoji())
	}
	lightsStr := strings.Join(lights, " ")

	overall := fmt.Sprintf("%s %s", regime.Overall.Emoji(), regime.Overall)
	if regime.Reverting {
		overall += " · ⚠️ curve inverted then reverted"
	}

	header := fmt.Sprintf(
		"📊 <b>Monthly Market Environment Check · %s</b>\n\n"+
			"<b>Five Indicators</b>\n%s\n\n"+
			"<b>Lights</b>  %s\n"+
			"<b>Overall: %s</b>",
		period, indicatorsStr, lightsStr, overall,
	)

	const divider = "\n\n─────────────────\n\n"

	analysisBlock := fmt.Sprintf(
		"<b>🤖 AI Analysis</b>\n\n%s\n\n<i>This is information, not investment advice.</i>",
		analysis,
	)

	full := header + divider + analysisBlock + divider + sourceLinks
	if len(full) <= telegramSplitLimit {
		return []string{full}
	}

	return []string{
		header,
		analysisBlock + divider + sourceLinks,
	}
}

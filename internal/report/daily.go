package report

import (
	"fmt"
	"strings"

	"github.com/jwei/macrowatch/models"
)

// DailySystemPrompt frames the model as the daily commentator.
const DailySystemPrompt = "You are a friend who knows investing. Direct, to the point, " +
	"no filler, and never say 'I cannot predict the market'."

// quoteLine renders one quote with a direction arrow.
func quoteLine(q models.Quote) string {
	arrow := "▲"
	if q.ChangePct < 0 {
		arrow = "▼"
	}
	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	return fmt.Sprintf("%s: %.2f %s%.2f%%", name, q.Price, arrow, abs(q.ChangePct))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// BuildDailyPrompt assembles the daily commentary prompt from quotes.
func BuildDailyPrompt(date string, quotes []models.Quote) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Today is %s.\n\nToday's market data:\n", date)
	if len(quotes) == 0 {
		sb.WriteString("(market data unavailable today)\n")
	}
	for _, q := range quotes {
		sb.WriteString(quoteLine(q))
		sb.WriteString("\n")
	}

	sb.WriteString("\nWrite 1-2 sentences on each of these three points, casual tone, no filler:\n\n")
	sb.WriteString("1. [Why the market moved] Was today risk-on or risk-off overall? What was strongest and weakest?\n")
	sb.WriteString("2. [What long-term ETF holders should note] For someone holding VT, QQQ or 0050, is there any signal in today's data, or just keep holding?\n")
	sb.WriteString("3. [One-line takeaway] What is today's market telling you?\n\n")
	sb.WriteString("End with exactly this line: \"This is information sharing, not trading advice 😊\"\n\n")
	sb.WriteString("No headings, no bullet lists, write it as conversational paragraphs.")

	return sb.String()
}

// FormatDailyMessage renders the daily brief as a Telegram HTML message.
func FormatDailyMessage(date string, quotes []models.Quote, headlines []models.NewsItem, analysis string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 <b>Daily Market Brief · %s</b>\n\n", date)

	if len(quotes) > 0 {
		for _, q := range quotes {
			sb.WriteString(quoteLine(q))
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("Market data unavailable today\n")
	}

	if len(headlines) > 0 {
		sb.WriteString("\n<b>Headlines</b>\n")
		for _, h := range headlines {
			fmt.Fprintf(&sb, "• [%s] %s\n", h.Source, h.Title)
		}
	}

	if analysis != "" {
		sb.WriteString("\n")
		sb.WriteString(analysis)
	}

	return sb.String()
}

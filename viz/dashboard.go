// ABOUTME: Portfolio statistics and terminal dashboard rendering
// ABOUTME: Aggregates accounts by focus tier and bands shortfall and health
package viz

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Akshada2906/circle-insights/models"
)

type PortfolioStats struct {
	TotalAccounts int
	ByFocus       map[string]FocusStats

	// Financial totals across every account
	Target    float64
	Forecast  float64
	Shortfall float64

	ShortfallBands map[models.Status]int
	HealthBands    map[models.Status]int

	// Needs attention
	Critical []AttentionItem
}

type FocusStats struct {
	Focus     string
	Count     int
	Target    float64
	Forecast  float64
	Shortfall float64
}

type AttentionItem struct {
	AccountID string
	Name      string
	Reason    string
}

// ShortfallPercent is the portfolio shortfall as a percentage of the total target.
func (s *PortfolioStats) ShortfallPercent() float64 {
	return models.ShortfallPercent(s.Target, s.Forecast)
}

// Portfolio aggregates accounts into dashboard statistics.
func Portfolio(accounts []models.Account) *PortfolioStats {
	stats := &PortfolioStats{
		TotalAccounts:  len(accounts),
		ByFocus:        make(map[string]FocusStats),
		ShortfallBands: make(map[models.Status]int),
		HealthBands:    make(map[models.Status]int),
	}

	for _, a := range accounts {
		focus := a.Focus
		if focus == "" {
			focus = "Unassigned"
		}
		fs := stats.ByFocus[focus]
		fs.Focus = focus
		fs.Count++
		fs.Target += a.Target2026
		fs.Forecast += a.Forecast2026
		fs.Shortfall += models.Shortfall(a.Target2026, a.Forecast2026)
		stats.ByFocus[focus] = fs

		stats.Target += a.Target2026
		stats.Forecast += a.Forecast2026
		stats.Shortfall += models.Shortfall(a.Target2026, a.Forecast2026)

		shortfall := a.ShortfallStatus()
		health := a.HealthStatus()
		stats.ShortfallBands[shortfall]++
		stats.HealthBands[health]++

		switch {
		case shortfall == models.StatusCritical:
			stats.Critical = append(stats.Critical, AttentionItem{
				AccountID: a.ID,
				Name:      a.Name,
				Reason:    fmt.Sprintf("shortfall %.0f%% of target", a.ShortfallPercent()),
			})
		case health == models.StatusCritical:
			stats.Critical = append(stats.Critical, AttentionItem{
				AccountID: a.ID,
				Name:      a.Name,
				Reason:    fmt.Sprintf("health score %.0f", a.HealthScore),
			})
		}
	}

	return stats
}

func RenderDashboard(stats *PortfolioStats) string {
	p := message.NewPrinter(language.English)
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  CIRCLE INSIGHTS PORTFOLIO\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("FOCUS TIERS\n")
	renderFocus(&out, p, stats.ByFocus)
	out.WriteString("\n")

	out.WriteString("2026 FINANCIALS\n")
	out.WriteString(p.Sprintf("  Target    %12.0f\n", stats.Target))
	out.WriteString(p.Sprintf("  Forecast  %12.0f\n", stats.Forecast))
	out.WriteString(p.Sprintf("  Shortfall %12.0f  (%.1f%%, %s)\n\n",
		stats.Shortfall, stats.ShortfallPercent(), models.ShortfallBand(stats.ShortfallPercent())))

	out.WriteString("BANDS\n")
	out.WriteString(fmt.Sprintf("  shortfall  ✅ %d  ⚠️  %d  🔴 %d\n",
		stats.ShortfallBands[models.StatusGood], stats.ShortfallBands[models.StatusWarning], stats.ShortfallBands[models.StatusCritical]))
	out.WriteString(fmt.Sprintf("  health     ✅ %d  ⚠️  %d  🔴 %d\n\n",
		stats.HealthBands[models.StatusGood], stats.HealthBands[models.StatusWarning], stats.HealthBands[models.StatusCritical]))

	if len(stats.Critical) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		for _, item := range stats.Critical {
			out.WriteString(fmt.Sprintf("  🔴 %s - %s\n", item.Name, item.Reason))
		}
	}

	return out.String()
}

func renderFocus(out *strings.Builder, p *message.Printer, byFocus map[string]FocusStats) {
	order := append([]string(nil), models.FocusTiers...)
	var extra []string
	for focus := range byFocus {
		if !slices.Contains(order, focus) {
			extra = append(extra, focus)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	maxCount := 0
	for _, fs := range byFocus {
		if fs.Count > maxCount {
			maxCount = fs.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, focus := range order {
		fs, exists := byFocus[focus]
		if !exists {
			continue
		}
		barLength := (fs.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
		out.WriteString(p.Sprintf("  %-11s %s  %2d  (target %.0f)\n", focus, bar, fs.Count, fs.Target))
	}
}

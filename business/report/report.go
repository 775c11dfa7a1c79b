package report

import (
	"math"
	"strings"

	"insureai/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	highRiskAbove = 30000.0
	lowRiskBelow  = 10000.0

	KPILabel = "ESTIMATED ANNUAL PREMIUM"

	IdleMessage        = "Awaiting Input: Adjust parameters and execute prediction to view results."
	UnavailableMessage = "Model unavailable: no estimate could be produced."
)

var riskBanners = map[domain.RiskLevel]domain.Banner{
	domain.RiskHigh: {
		Kind:    domain.AlertError,
		Message: "High Risk Profile Detected: Premium exceeds standard thresholds.",
	},
	domain.RiskLow: {
		Kind:    domain.AlertSuccess,
		Message: "Low Risk Profile: Optimal health markers identified.",
	},
	domain.RiskStandard: {
		Kind:    domain.AlertInfo,
		Message: "Standard Risk Profile: Aligns with market averages.",
	},
}

var printer = message.NewPrinter(language.English)

// Classify buckets a premium into a risk level. Every value, NaN included,
// lands in exactly one bucket.
func Classify(premium float64) domain.RiskLevel {
	switch {
	case premium > highRiskAbove:
		return domain.RiskHigh
	case premium < lowRiskBelow:
		return domain.RiskLow
	default:
		return domain.RiskStandard
	}
}

// FormatCurrency renders a premium as "$ 12,345.68". Cents round half-up on
// the shortest decimal form of v, so 2.675 shows as $ 2.68 even though the
// nearest float64 is slightly below it.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$ " + printer.Sprint(v)
	}
	rounded := decimal.NewFromFloat(v).Round(2)
	s := printer.Sprintf("%.2f", rounded.InexactFloat64())
	if strings.HasPrefix(s, "-") {
		return "-$ " + strings.TrimPrefix(s, "-")
	}
	return "$ " + s
}

// Idle is shown before the first submission.
func Idle() domain.Report {
	return domain.Report{
		State:  domain.ReportIdle,
		Banner: domain.Banner{Kind: domain.AlertInfo, Message: IdleMessage},
	}
}

// Build turns a prediction into the result panel. An unavailable prediction
// never gets a KPI or gauge.
func Build(p domain.Prediction) domain.Report {
	if !p.Available() {
		msg := UnavailableMessage
		if p.Reason != "" {
			msg += " (" + p.Reason + ")"
		}
		return domain.Report{
			State:  domain.ReportUnavailable,
			Banner: domain.Banner{Kind: domain.AlertWarning, Message: msg},
		}
	}

	risk := Classify(p.Value)
	gauge := NewGauge(p.Value)

	return domain.Report{
		State:  domain.ReportResult,
		Risk:   risk,
		Banner: riskBanners[risk],
		KPI: &domain.KPI{
			Label: KPILabel,
			Value: p.Value,
			Text:  FormatCurrency(p.Value),
		},
		Gauge: &gauge,
	}
}

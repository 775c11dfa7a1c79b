package rest

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"insureai/business/report"
	"insureai/domain"
)

const (
	gaugeCX     = 160.0
	gaugeCY     = 160.0
	gaugeRadius = 120.0
	gaugeStroke = 36.0
)

// point on the upper half circle; fraction 0 is the left end, 1 the right end
func gaugePoint(fraction, radius float64) (float64, float64) {
	angle := math.Pi * (1 - fraction)
	return gaugeCX + radius*math.Cos(angle), gaugeCY - radius*math.Sin(angle)
}

// gaugeSVG draws the semicircular gauge as inline svg. All text is escaped.
func gaugeSVG(g domain.Gauge) template.HTML {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg class="gauge" viewBox="0 0 320 200" width="100%%" height="250" role="img" aria-label="premium gauge">`)

	for _, band := range g.Bands {
		x1, y1 := gaugePoint(report.Fraction(g, band.From), gaugeRadius)
		x2, y2 := gaugePoint(report.Fraction(g, band.To), gaugeRadius)
		fmt.Fprintf(&b, `<path d="M %.2f %.2f A %.0f %.0f 0 0 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="%.0f"/>`,
			x1, y1, gaugeRadius, gaugeRadius, x2, y2, template.HTMLEscapeString(band.Color), gaugeStroke)
	}

	// threshold marker spans the inner part of the band ring
	f := report.Fraction(g, g.Threshold.Value)
	half := gaugeStroke * g.Threshold.Thickness / 2
	ix, iy := gaugePoint(f, gaugeRadius-half)
	ox, oy := gaugePoint(f, gaugeRadius+half)
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d"/>`,
		ix, iy, ox, oy, template.HTMLEscapeString(g.Threshold.Color), g.Threshold.Width)

	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="11">%s</text>`,
		gaugeCX-gaugeRadius, gaugeCY+20, template.HTMLEscapeString(fmt.Sprintf("%.0f", g.Min)))
	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="11">%s</text>`,
		gaugeCX+gaugeRadius, gaugeCY+20, template.HTMLEscapeString(fmt.Sprintf("%.0f", g.Max)))
	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="26" font-weight="600">%s</text>`,
		gaugeCX, gaugeCY-10, template.HTMLEscapeString(report.FormatCurrency(g.Value)))

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/member"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
)

// DrawSection creates an ASCII outline of an I-shape with its dimensions.
// Flange and web thickness are exaggerated to at least one character.
func DrawSection(s profile.Section) string {
	var sb strings.Builder

	widthChars := 31
	heightChars := 15

	flangeRows := max(1, int(math.Round(s.Tf()/s.D()*float64(heightChars))))
	webChars := max(1, int(math.Round(s.Tw()/s.Bf()*float64(widthChars))))
	webLeft := (widthChars - webChars) / 2
	mid := heightChars / 2

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", s.Name()))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(s.Name())))))
	sb.WriteString(fmt.Sprintf("  ◄%s►\n", centre(fmt.Sprintf("bf = %.0f", s.Bf()), widthChars)))

	for i := 0; i < heightChars; i++ {
		var row string
		if i < flangeRows || i >= heightChars-flangeRows {
			row = strings.Repeat("█", widthChars)
		} else {
			row = strings.Repeat(" ", webLeft) + strings.Repeat("█", webChars) + strings.Repeat(" ", widthChars-webLeft-webChars)
		}

		sb.WriteString("   " + row)
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ▲  tf = %.1f", s.Tf()))
		case i == mid:
			sb.WriteString(fmt.Sprintf("  d = %.0f   tw = %.1f", s.D(), s.Tw()))
		case i == heightChars-1:
			sb.WriteString("  ▼")
		default:
			sb.WriteString("  │")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

func centre(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat("─", left) + text + strings.Repeat("─", width-n-left)
}

// DrawCapacityCurve creates an ASCII bar chart of φMn against Lb with the
// zone of each sample.
func DrawCapacityCurve(points []member.CurvePoint, lp, lr float64) string {
	var sb strings.Builder

	barWidth := 40
	var maxM float64
	for _, p := range points {
		maxM = math.Max(maxM, p.PhiMn)
	}

	sb.WriteString("\n")
	sb.WriteString("  LATERAL-TORSIONAL BUCKLING ZONES\n")
	sb.WriteString("  ────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  Lp = %.0f mm    Lr = %.0f mm\n\n", lp, lr))
	sb.WriteString("     Lb (m)   φMn (kN-m)\n")

	for _, p := range points {
		barLen := 0
		if maxM > 0 {
			barLen = int(math.Round(p.PhiMn / maxM * float64(barWidth)))
		}
		sb.WriteString(fmt.Sprintf("  %7.2f  %8.2f  %s%s  %s\n",
			p.Lb/1e3, p.PhiMn/1e6,
			strings.Repeat(zoneFill(p.State), barLen),
			strings.Repeat(" ", barWidth-barLen),
			p.State))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Yielding (Lb <= Lp)\n")
	sb.WriteString("  ▓▓▓ = Inelastic LTB (Lp < Lb <= Lr)\n")
	sb.WriteString("  ░░░ = Elastic LTB (Lb > Lr)\n")

	return sb.String()
}

func zoneFill(state member.FlexureState) string {
	switch state {
	case member.Yielding:
		return "█"
	case member.InelasticLTB:
		return "▓"
	default:
		return "░"
	}
}

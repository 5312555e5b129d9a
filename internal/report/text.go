package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

// WriteText prints a console report in the same block layout used by every
// command: banner, input data, results, status.
func WriteText(w io.Writer, inputs []Input, rec Record) error {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(doubleRule + "\n")
	sb.WriteString(fmt.Sprintf("     %s - %s\n", strings.ToUpper(rec.Title()), version.Standard))
	sb.WriteString(doubleRule + "\n\n")

	if len(inputs) > 0 {
		sb.WriteString("INPUT DATA:\n")
		sb.WriteString(singleRule + "\n")
		tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		for _, in := range inputs {
			fmt.Fprintf(tw, "  %s:\t%s\n", in.Label, in.Value)
		}
		tw.Flush()
		sb.WriteString("\n")
	}

	sb.WriteString("RESULTS:\n")
	sb.WriteString(singleRule + "\n")
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, f := range rec.Fields() {
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, f.Display())
	}
	tw.Flush()
	sb.WriteString("\n")

	status := rec.Verdict().String()
	mark := "✓"
	if !rec.Verdict().Passed() {
		mark = "✗"
	}
	border := strings.Repeat("═", len([]rune(status))+16)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  STATUS: %s %s   ║\n", status, mark))
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n\n", border))

	_, err := io.WriteString(w, sb.String())
	return err
}

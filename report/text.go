package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/polynizer/fretpath/voicing"
)

// Options controls both renderers.
type Options struct {
	// Song is the title printed above the runs.
	Song string

	// Reference is the expected sqrt(cumulative cost) per position; nil
	// disables verification.
	Reference []float64

	// Tolerance of the reference check; ≤ 0 selects DefaultTolerance.
	Tolerance float64

	// Dropped lists chords removed from the song because the table lacks them.
	Dropped []string

	// Color enables ANSI styling in Text.
	Color bool

	// HidePath makes Text print run statistics only.
	HidePath bool
}

// palette bundles the styles of one Text call.
type palette struct {
	title  lipgloss.Style
	header lipgloss.Style
	ok     *color.Color
	bad    *color.Color
	warn   *color.Color
	faint  *color.Color
	styled bool
}

func newPalette(enabled bool) palette {
	p := palette{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
		faint:  color.New(color.Faint),
		styled: enabled,
	}
	for _, c := range []*color.Color{p.ok, p.bad, p.warn, p.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Text writes a human readable report of runs to w.
func Text(w io.Writer, runs []voicing.Run, opts Options) error {
	pal := newPalette(opts.Color)
	var b strings.Builder

	if opts.Song != "" {
		b.WriteString(pal.render(pal.title, "Song: "+opts.Song))
		b.WriteString("\n")
	}
	if len(opts.Dropped) > 0 {
		b.WriteString(pal.warn.Sprintf("Dropped %d unknown chord(s): %s", len(opts.Dropped), strings.Join(opts.Dropped, ", ")))
		b.WriteString("\n")
	}

	for _, r := range runs {
		b.WriteString("\n")
		writeRun(&b, pal, r, opts)
	}
	if len(runs) > 1 {
		b.WriteString("\n")
		writeSummary(&b, pal, runs)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRun(b *strings.Builder, pal palette, r voicing.Run, opts Options) {
	b.WriteString(pal.render(pal.header, r.Algorithm.Title()))
	b.WriteString("\n")

	if r.Err != nil {
		reason := "no playable path"
		if errors.Is(r.Err, voicing.ErrSequenceTooLong) {
			reason = "song too long for exhaustive search"
		}
		b.WriteString("  ")
		b.WriteString(pal.bad.Sprintf("No result: %s", reason))
		b.WriteString(pal.faint.Sprintf(" (%.2f ms)", ms(r)))
		b.WriteString("\n")
		return
	}

	res := r.Result
	b.WriteString("Run statistics:\n")
	fmt.Fprintf(b, "  Minimum displacement: %g\n", res.Cost)
	fmt.Fprintf(b, "  Sqrt(total cost): %.2f\n", math.Sqrt(res.Cost))
	fmt.Fprintf(b, "  Completed in %.2f ms\n", ms(r))

	if opts.HidePath {
		return
	}

	var checks []Check
	if opts.Reference != nil {
		checks = Verify(res.Path, opts.Reference, opts.Tolerance)
	}

	width := 0
	for _, s := range res.Path {
		width = max(width, runewidth.StringWidth(s.Chord))
	}

	b.WriteString("Optimal path:\n")
	for i, s := range res.Path {
		fmt.Fprintf(b, "  For %s play variant %d. Centroid: %.2f, Total cost: %.2f",
			runewidth.FillRight(s.Chord, width), s.Variant, s.Centroid, math.Sqrt(s.Cost))
		if i < len(checks) {
			b.WriteString(" ")
			b.WriteString(pal.checkMark(checks[i]))
		}
		b.WriteString("\n")
	}
	if len(checks) > 0 {
		fmt.Fprintf(b, "  Reference: %d/%d within %.2f\n", Matched(checks), len(checks), tolerance(opts))
	}
}

func (p palette) checkMark(c Check) string {
	if c.OK {
		return p.ok.Sprintf("✓ (CSV: %.2f)", c.Expected)
	}
	return p.bad.Sprintf("❌ (CSV: %.2f, diff: %.2f)", c.Expected, c.Diff)
}

// writeSummary prints one aligned line per run and the gap to the best cost.
func writeSummary(b *strings.Builder, pal palette, runs []voicing.Run) {
	b.WriteString(pal.render(pal.header, "Comparison"))
	b.WriteString("\n")

	best := math.Inf(1)
	width := 0
	for _, r := range runs {
		width = max(width, runewidth.StringWidth(r.Algorithm.Title()))
		if r.Err == nil && r.Result.Cost < best {
			best = r.Result.Cost
		}
	}

	for _, r := range runs {
		name := runewidth.FillRight(r.Algorithm.Title(), width)
		if r.Err != nil {
			fmt.Fprintf(b, "  %s  %s  %8.2f ms\n", name, pal.bad.Sprint(fmt.Sprintf("%10s", "-")), ms(r))
			continue
		}
		gap := ""
		if d := r.Result.Cost - best; d > 0 {
			gap = pal.warn.Sprintf("  +%g over best", d)
		}
		fmt.Fprintf(b, "  %s  %10.2f  %8.2f ms%s\n", name, math.Sqrt(r.Result.Cost), ms(r), gap)
	}
}

func ms(r voicing.Run) float64 {
	return r.Elapsed.Seconds() * 1000
}

func tolerance(opts Options) float64 {
	if opts.Tolerance <= 0 {
		return DefaultTolerance
	}
	return opts.Tolerance
}

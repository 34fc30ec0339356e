// SPDX-License-Identifier: MIT

// Package report renders networks and routes for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/network"
)

// Printer writes human-readable output to one writer.
type Printer struct {
	w      io.Writer
	bold   *color.Color
	green  *color.Color
	red    *color.Color
	cyan   *color.Color
	yellow *color.Color
}

// ColorEnabled resolves an auto/always/never setting against terminal detection.
func ColorEnabled(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

// New returns a Printer; colored selects ANSI styling.
func New(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:      w,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
		yellow: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.bold, p.green, p.red, p.cyan, p.yellow} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Banner prints a title with a matching underline.
func (p *Printer) Banner(title string) {
	p.bold.Fprintf(p.w, "🗺️  %s\n", title)
	p.bold.Fprintln(p.w, strings.Repeat("=", len(title)+4))
}

// Network lists locations with their coordinates.
func (p *Printer) Network(locs []network.Location) {
	fmt.Fprintln(p.w, "\n📍 Available Locations:")
	for _, l := range locs {
		fmt.Fprintf(p.w, "  • %s (%s, %s)\n", p.cyan.Sprint(l.Name), num(l.X), num(l.Y))
	}
}

// Islands warns about locations unreachable from the main component.
func (p *Printer) Islands(components [][]string) {
	if len(components) <= 1 {
		return
	}
	p.yellow.Fprintf(p.w, "\n⚠️  Network has %d disconnected parts:\n", len(components))
	for _, c := range components {
		p.yellow.Fprintf(p.w, "  • %s\n", strings.Join(c, ", "))
	}
}

// Searching announces a query.
func (p *Printer) Searching(from, to string) {
	fmt.Fprintf(p.w, "\n🚚 Finding shortest route from %s to %s...\n", from, to)
}

// Route prints the outcome of a query.
func (p *Printer) Route(res dijkstra.Result) {
	if !res.Found {
		p.red.Fprintf(p.w, "❌ No route found from %s to %s\n", res.Source, res.Target)
		return
	}
	p.green.Fprintf(p.w, "✅ Route found! Total distance: %.1f km\n", res.Distance)
	fmt.Fprintf(p.w, "📍 Path: %s\n", strings.Join(res.Path, " → "))
}

// Legs prints each hop of a found route.
func (p *Printer) Legs(res dijkstra.Result) {
	for i, h := range res.Hops {
		fmt.Fprintf(p.w, "   %d. %s → %s  %.1f km\n", i+1, h.From, h.To, h.Distance)
	}
}

// Stops prints the route with the fewest stops. Nothing is printed when the
// destination is unreachable.
func (p *Printer) Stops(stops []string, found bool) {
	if !found {
		return
	}
	fmt.Fprintf(p.w, "🔀 Fewest stops (%d): %s\n", len(stops)-1, strings.Join(stops, " → "))
}

// UnknownLocation reports a name the network does not contain.
func (p *Printer) UnknownLocation(name string) {
	p.red.Fprintf(p.w, "❌ Location %q not found. Please try again.\n", name)
}

// Separator prints a blank line and a rule between interactive rounds.
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, "\n"+strings.Repeat("=", 50))
}

// Prompt prints text without a newline.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, text)
}

// Goodbye ends an interactive session.
func (p *Printer) Goodbye() {
	fmt.Fprintln(p.w, "👋 Goodbye!")
}

// Analysis prints the complexity footer for the frontier in use.
func (p *Printer) Analysis(f dijkstra.Frontier) {
	p.bold.Fprintln(p.w, "\n🎯 Algorithm Analysis:")
	switch f {
	case dijkstra.FrontierHeap:
		fmt.Fprintln(p.w, "• Time Complexity: O((V + E) log V) with a binary-heap frontier")
	default:
		fmt.Fprintln(p.w, "• Time Complexity: O(V²) where V = number of vertices")
	}
	fmt.Fprintln(p.w, "• Space Complexity: O(V + E) where E = number of edges")
	fmt.Fprintln(p.w, "• This implementation uses Dijkstra's algorithm with adjacency list")
	fmt.Fprintln(p.w, "• Optimal for finding shortest paths in weighted graphs with non-negative edges")
}

// num formats a coordinate without trailing zeros: 2, 2.5, -0.25.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zhscan/zhscan/internal/session"
)

const (
	colorReset = "\033[0m"
	colorFile  = "\033[1;34m" // bold blue file headers
	colorCount = "\033[1;32m" // bold green match counts
	colorLoc   = "\033[2m"    // dim line:col
)

// Options controls report formatting.
type Options struct {
	Width int  // truncate occurrence rows to this many columns (0 = no limit)
	Color bool // emit ANSI colors
}

// Report renders a projection as a grouped text report: one header per
// file with its match count, then an indented "line:col  text" row per
// occurrence of every expanded group.
func Report(groups []session.FileGroup, opts Options) string {
	if len(groups) == 0 {
		return "No Chinese text found.\n"
	}

	var b strings.Builder
	for i, fg := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("%s (%d)", fg.FilePath, fg.Count)
		if opts.Color {
			header = fmt.Sprintf("%s%s%s (%s%d%s)", colorFile, fg.FilePath, colorReset, colorCount, fg.Count, colorReset)
		}
		b.WriteString(header)
		b.WriteString("\n")

		for _, o := range fg.Occurrences {
			b.WriteString(formatRow(o, opts))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatRow(o session.Occurrence, opts Options) string {
	loc := fmt.Sprintf("%d:%d", o.Line, o.Column)

	text := strings.ReplaceAll(o.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	if opts.Width > 0 {
		textMax := opts.Width - len(loc) - 4 // indent + separator
		if textMax < 0 {
			textMax = 0
		}
		if runewidth.StringWidth(text) > textMax {
			text = runewidth.Truncate(text, textMax, "…")
		}
	}

	if opts.Color {
		return fmt.Sprintf("  %s%s%s  %s", colorLoc, loc, colorReset, text)
	}
	return fmt.Sprintf("  %s  %s", loc, text)
}

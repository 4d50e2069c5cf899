package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the display width of a string, ignoring ANSI codes.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Styled text keeps its escape codes. Returns whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if ansi.StringWidth(cfg.Ellipsis) >= maxWidth {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix truncates only the middle text, keeping prefix and suffix.
// Example: TruncateWithPrefixSuffix("Speedruns", 10, "▾ ", " 12", cfg) -> "▾ Spee… 12"
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	combined := prefix + text + suffix
	if ansi.StringWidth(combined) <= maxWidth {
		return combined, false
	}

	overhead := ansi.StringWidth(prefix) + ansi.StringWidth(suffix) + ansi.StringWidth(cfg.Ellipsis)
	if overhead >= maxWidth {
		// Not enough room even for prefix + ellipsis + suffix
		return TruncateText(combined, maxWidth, cfg)
	}

	return prefix + ansi.Truncate(text, maxWidth-overhead+ansi.StringWidth(cfg.Ellipsis), cfg.Ellipsis) + suffix, true
}

// PadRight pads s with spaces to width cells. Longer strings are returned as-is.
func PadRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// JoinFitting joins parts with sep, dropping trailing parts that would
// push the line past maxWidth. The first part is always kept, truncated if needed.
func JoinFitting(parts []string, sep string, maxWidth int, cfg TextConfig) string {
	var kept []string
	width := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		w := ansi.StringWidth(p)
		if len(kept) > 0 {
			w += ansi.StringWidth(sep)
		}
		if width+w > maxWidth {
			if len(kept) == 0 {
				line, _ := TruncateText(p, maxWidth, cfg)
				return line
			}
			break
		}
		kept = append(kept, p)
		width += w
	}
	return strings.Join(kept, sep)
}

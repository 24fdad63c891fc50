package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	SymFolder, SymItem, SymShared                 string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	BarFull, BarEmpty                             string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		SymFolder: "▸", SymItem: "•", SymShared: "✔",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		BarFull: "█", BarEmpty: "░",
	}
}

// SetTheme selects classic (default), neon or mono.
func SetTheme(name string) {
	disableColor = false
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			SymFolder: "◆", SymItem: "◇", SymShared: "✔",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		disableColor = true
		current = Theme{
			SymFolder: ">", SymItem: "-", SymShared: "ok",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Mono reports whether colors are off.
func Mono() bool { return disableColor }

package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one age-adapted color set. Younger groups get brighter,
// chunkier colors; the oldest group gets a calmer scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// paletteYoung — ages 3-5: big bright primary colors.
var paletteYoung = Palette{
	Primary:   lipgloss.Color("#FACC15"), // Sunflower
	Secondary: lipgloss.Color("#38BDF8"), // Sky
	Accent:    lipgloss.Color("#FB7185"), // Pink
	Success:   lipgloss.Color("#4ADE80"), // Bright Green
	Warning:   lipgloss.Color("#FB923C"), // Orange
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#FEFCE8"), // Warm White
	TextDim:   lipgloss.Color("#A8A29E"), // Stone
	BgCard:    lipgloss.Color("#1C1917"), // Warm Dark
	Border:    lipgloss.Color("#44403C"), // Stone Dark
}

// paletteMiddle — ages 6-9: the default, green and growing.
var paletteMiddle = Palette{
	Primary:   lipgloss.Color("#22C55E"), // Leaf Green
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Warning:   lipgloss.Color("#EAB308"), // Amber
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// paletteOlder — ages 10-12: muted, less toy-like.
var paletteOlder = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Violet
	Secondary: lipgloss.Color("#0EA5E9"), // Blue
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#10B981"), // Emerald
	Warning:   lipgloss.Color("#EAB308"), // Amber
	Error:     lipgloss.Color("#EF4444"), // Red
	Text:      lipgloss.Color("#E2E8F0"), // Light Slate
	TextDim:   lipgloss.Color("#64748B"), // Slate
	BgCard:    lipgloss.Color("#0F172A"), // Deep Navy
	Border:    lipgloss.Color("#1E293B"), // Dark Slate
}

// For returns the palette for an age group string as used by the
// session engine ("ages3to5", "ages6to9", "ages10to12").
func For(ageGroup string) Palette {
	switch ageGroup {
	case "ages3to5":
		return paletteYoung
	case "ages10to12":
		return paletteOlder
	default:
		return paletteMiddle
	}
}

// Active colors, referenced throughout the UI. SetAge swaps them once
// at startup; screens read them per render so the swap is total.
var (
	Primary   = paletteMiddle.Primary
	Secondary = paletteMiddle.Secondary
	Accent    = paletteMiddle.Accent
	Success   = paletteMiddle.Success
	Warning   = paletteMiddle.Warning
	Error     = paletteMiddle.Error
	Text      = paletteMiddle.Text
	TextDim   = paletteMiddle.TextDim
	BgCard    = paletteMiddle.BgCard
	Border    = paletteMiddle.Border
)

// SetAge switches the active palette to the one for the given age group.
func SetAge(ageGroup string) {
	p := For(ageGroup)
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgCard = p.BgCard
	Border = p.Border
}

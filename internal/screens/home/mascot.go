package home

import (
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/ui/theme"
)

// MascotStage selects which plant art to display. The plant grows with
// the child's total session count.
type MascotStage int

const (
	MascotSeed   MascotStage = iota // just planted
	MascotSprout                    // a few sessions in
	MascotBloom                     // a seasoned learner
)

const mascotSeed = `
    ,
 _______
 \__●__/ `

const mascotSprout = `   \ /
    |
 _______
 \_____/ `

const mascotBloom = ` @ \ / @
  @\|/@
    |
 _______
 \_____/ `

// stageFor maps a total session count to a growth stage.
func stageFor(totalSessions int) MascotStage {
	switch {
	case totalSessions >= 15:
		return MascotBloom
	case totalSessions >= 5:
		return MascotSprout
	default:
		return MascotSeed
	}
}

// RenderMascot returns the plant art for the given stage.
func RenderMascot(stage MascotStage) string {
	var art string
	fg := theme.Primary

	switch stage {
	case MascotBloom:
		art = mascotBloom
		fg = theme.Accent
	case MascotSprout:
		art = mascotSprout
	default:
		art = mascotSeed
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

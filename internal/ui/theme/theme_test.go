package theme

import "testing"

func TestFor_DistinctPalettes(t *testing.T) {
	young := For("ages3to5")
	middle := For("ages6to9")
	older := For("ages10to12")

	if young.Primary == middle.Primary || middle.Primary == older.Primary {
		t.Error("expected each age group to get its own primary color")
	}
}

func TestFor_UnknownFallsBack(t *testing.T) {
	if For("grownups") != For("ages6to9") {
		t.Error("expected unknown age group to fall back to the middle palette")
	}
}

func TestSetAge(t *testing.T) {
	t.Cleanup(func() { SetAge("ages6to9") })

	SetAge("ages3to5")
	if Primary != paletteYoung.Primary {
		t.Error("expected active primary swapped to the young palette")
	}
	if BgCard != paletteYoung.BgCard {
		t.Error("expected active card background swapped to the young palette")
	}
}

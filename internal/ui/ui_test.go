package ui

import (
	"image"
	"testing"
	"time"

	"go-wave-defense/internal/defs"
)

func TestToRoman(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{10, "X"},
		{14, "XIV"},
		{20, "XX"},
		{49, "XLIX"},
		{1994, "MCMXCIV"},
	}
	for _, tc := range testCases {
		if got := toRoman(tc.in); got != tc.want {
			t.Errorf("toRoman(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTowerPaletteClick(t *testing.T) {
	p := NewTowerPalette(0, 0, 100, 40, 10)

	if p.HandleClick(500, 500) {
		t.Fatal("Expected click outside the palette to be ignored")
	}
	if !p.HandleClick(50, 55) {
		t.Fatal("Expected click on the second button to be handled")
	}
	if !p.Armed || p.Selected != defs.TowerSniper {
		t.Errorf("Expected sniper to be armed, got armed=%v selected=%v", p.Armed, p.Selected)
	}

	p.HandleClick(50, 55)
	if p.Armed {
		t.Error("Expected a second click on the same button to disarm")
	}

	p.HandleClick(50, 10)
	p.Disarm()
	if p.Armed {
		t.Error("Expected Disarm to clear the armed type")
	}
}

func TestTowerPaletteRefresh(t *testing.T) {
	p := NewTowerPalette(0, 0, 100, 40, 10)
	p.Refresh(60)

	basic, _ := defs.TowerBasic.Definition()
	for i, b := range p.buttons {
		def, _ := p.types[i].Definition()
		want := def.Cost <= 60
		if b.Enabled != want {
			t.Errorf("Button %s: expected enabled=%v, got %v", def.Name, want, b.Enabled)
		}
	}
	if !p.buttons[0].Enabled || basic.Cost > 60 {
		t.Errorf("Expected basic tower (cost %d) to be affordable", basic.Cost)
	}
}

func TestSpeedButtonCycle(t *testing.T) {
	b := NewSpeedButton(image.Rect(0, 0, 10, 10))
	if b.Multiplier() != 1.0 {
		t.Fatalf("Expected initial speed 1.0, got %v", b.Multiplier())
	}

	want := []float64{2.0, 3.0, 0.5, 1.0}
	for i, w := range want {
		if got := b.ToggleState(); got != w {
			t.Errorf("Toggle %d: expected %v, got %v", i+1, w, got)
		}
	}

	b.Sync(3.0)
	if b.Multiplier() != 3.0 {
		t.Errorf("Expected Sync to select 3.0, got %v", b.Multiplier())
	}
}

func TestSpeedButtonCooldown(t *testing.T) {
	b := NewSpeedButton(image.Rect(0, 0, 10, 10))
	b.ToggleState()
	now := b.LastToggleTime

	if b.CanToggle(now.Add(50*time.Millisecond), 150*time.Millisecond) {
		t.Error("Expected toggle within cooldown to be rejected")
	}
	if !b.CanToggle(now.Add(200*time.Millisecond), 150*time.Millisecond) {
		t.Error("Expected toggle after cooldown to be allowed")
	}
}

func TestInfoPanelLines(t *testing.T) {
	p := NewInfoPanel(image.Rect(0, 0, 200, 200), nil)

	lines := p.Lines(TowerInfo{Type: defs.TowerSniper, Range: 160})
	if len(lines) == 0 || lines[0] != "Sniper" {
		t.Fatalf("Expected sniper title, got %v", lines)
	}
	if got := lines[len(lines)-1]; got != "Sell: +$50" {
		t.Errorf("Expected refund line %q, got %q", "Sell: +$50", got)
	}
	if lines := p.Lines(TowerInfo{Type: defs.TowerType(99)}); lines != nil {
		t.Errorf("Expected no lines for unknown type, got %v", lines)
	}
}

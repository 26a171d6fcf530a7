package defs

import "testing"

func TestReferenceTowerStats(t *testing.T) {
	tests := []struct {
		tt       TowerType
		cost     int
		rng      float64
		damage   float64
		rate     float64
		seesCamo bool
	}{
		{TowerBasic, 50, 1.5, 20, 1.0, false},
		{TowerSniper, 100, 2.0, 50, 0.5, true},
		{TowerMachine, 150, 1.0, 10, 3.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.tt.String(), func(t *testing.T) {
			def, ok := tc.tt.Definition()
			if !ok {
				t.Fatal("Definition returned !ok for a known type")
			}
			if def.Cost != tc.cost || def.RangeFactor != tc.rng || def.Damage != tc.damage ||
				def.FireRate != tc.rate || def.CanSeeCamo != tc.seesCamo {
				t.Errorf("Unexpected stats: %+v", def)
			}
		})
	}
}

func TestParseTowerType(t *testing.T) {
	if tt, ok := ParseTowerType(" Sniper "); !ok || tt != TowerSniper {
		t.Errorf("Expected sniper, got %v ok=%v", tt, ok)
	}
	if _, ok := ParseTowerType("laser"); ok {
		t.Error("Unknown id must not parse")
	}
	if TowerType(42).Valid() {
		t.Error("Out-of-range type must be invalid")
	}
	if _, ok := TowerType(-1).Definition(); ok {
		t.Error("Negative type must have no definition")
	}
}

func TestApplyTowerDefinitions(t *testing.T) {
	saved := TowerLibrary
	defer func() { TowerLibrary = saved }()

	raw := []byte(`[{"id":"basic","name":"Basic+","cost":60,"range_factor":1.6,"damage":25,"fire_rate":1.2}]`)
	if err := ApplyTowerDefinitions(raw); err != nil {
		t.Fatalf("ApplyTowerDefinitions: %v", err)
	}
	if TowerLibrary[TowerBasic].Cost != 60 || TowerLibrary[TowerBasic].Name != "Basic+" {
		t.Errorf("Override not applied: %+v", TowerLibrary[TowerBasic])
	}
	if TowerLibrary[TowerSniper] != saved[TowerSniper] {
		t.Error("Entries not present in the file must stay untouched")
	}

	bad := []byte(`[{"id":"sniper","cost":1,"range_factor":1,"damage":1,"fire_rate":1},{"id":"laser","cost":1,"range_factor":1,"damage":1,"fire_rate":1}]`)
	before := TowerLibrary
	if err := ApplyTowerDefinitions(bad); err == nil {
		t.Error("Expected error for unknown id")
	}
	if TowerLibrary != before {
		t.Error("Failed load must not partially apply")
	}

	if err := ApplyTowerDefinitions([]byte(`{`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestLoadBundledTowerFile(t *testing.T) {
	saved := TowerLibrary
	defer func() { TowerLibrary = saved }()

	if err := LoadTowerDefinitions("../../assets/towers.json"); err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	if TowerLibrary != saved {
		t.Error("Bundled file must match the built-in table")
	}
	if err := LoadTowerDefinitions("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

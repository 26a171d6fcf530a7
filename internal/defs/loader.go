// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTowerDefinitions reads a JSON array of tower definitions and overrides the
// matching entries of TowerLibrary by ID. Unknown IDs are rejected.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	return ApplyTowerDefinitions(file)
}

// ApplyTowerDefinitions parses raw JSON and overrides TowerLibrary.
// Either every entry applies or none does.
func ApplyTowerDefinitions(raw []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(raw, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	next := TowerLibrary
	for _, def := range towerDefs {
		t, ok := ParseTowerType(def.ID)
		if !ok {
			return fmt.Errorf("unknown tower id %q", def.ID)
		}
		if def.Cost < 0 || def.FireRate <= 0 || def.RangeFactor <= 0 || def.Damage < 0 {
			return fmt.Errorf("invalid stats for tower %q", def.ID)
		}
		def.ID = TowerLibrary[t].ID
		next[t] = def
	}

	TowerLibrary = next
	log.Printf("Loaded %d tower definitions", len(towerDefs))
	return nil
}

package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category names accepted by IsValid.
const (
	CategoryBoat    = "boat"
	CategoryCaptain = "captain"
	CategoryProgram = "program"
	CategoryPier    = "pier"
)

// Dictionary holds the static reference lists used to build selection
// keyboards and validate submitted values. Loaded once at startup,
// immutable afterwards.
type Dictionary struct {
	captains []string
	boats    []string
	programs []string
	piers    []string
}

type dictionaryFile struct {
	Captains []string `yaml:"captains"`
	Boats    []string `yaml:"boats"`
	Programs []string `yaml:"programs"`
	Piers    []string `yaml:"piers"`
}

// Load reads the dictionaries YAML file.
func Load(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionaries file: %w", err)
	}

	var file dictionaryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionaries file: %w", err)
	}

	d := &Dictionary{
		captains: file.Captains,
		boats:    file.Boats,
		programs: file.Programs,
		piers:    file.Piers,
	}

	if len(d.captains) == 0 || len(d.boats) == 0 || len(d.programs) == 0 || len(d.piers) == 0 {
		return nil, fmt.Errorf("dictionaries file %s has an empty category", path)
	}

	return d, nil
}

// New builds a dictionary from in-memory lists. Used in tests.
func New(captains, boats, programs, piers []string) *Dictionary {
	return &Dictionary{captains: captains, boats: boats, programs: programs, piers: piers}
}

// Captains returns captain names in configured order.
func (d *Dictionary) Captains() []string { return d.captains }

// Boats returns boat names in configured order.
func (d *Dictionary) Boats() []string { return d.boats }

// Programs returns program names in configured order.
func (d *Dictionary) Programs() []string { return d.programs }

// Piers returns pier names in configured order.
func (d *Dictionary) Piers() []string { return d.piers }

// IsValid reports whether name is a configured entry of the category.
func (d *Dictionary) IsValid(category, name string) bool {
	var items []string
	switch category {
	case CategoryCaptain:
		items = d.captains
	case CategoryBoat:
		items = d.boats
	case CategoryProgram:
		items = d.programs
	case CategoryPier:
		items = d.piers
	default:
		return false
	}

	for _, item := range items {
		if item == name {
			return true
		}
	}
	return false
}

package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dictionaries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempYAML(t, `
captains:
  - Andrey
  - Maksim
boats:
  - BoatA
programs:
  - Sunset Cruise
  - N/A
piers:
  - Central Pier
`)

	dict, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Andrey", "Maksim"}, dict.Captains())
	assert.Equal(t, []string{"BoatA"}, dict.Boats())
	assert.Equal(t, []string{"Sunset Cruise", "N/A"}, dict.Programs())
	assert.Equal(t, []string{"Central Pier"}, dict.Piers())
}

func TestLoad_MissingFile(t *testing.T) {
	dict, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Nil(t, dict)
}

func TestLoad_EmptyCategory(t *testing.T) {
	path := writeTempYAML(t, `
captains:
  - Andrey
boats:
  - BoatA
programs:
  - Sunset Cruise
piers: []
`)

	dict, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, dict)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempYAML(t, "captains: [unclosed")

	dict, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, dict)
}

func TestDictionary_IsValid(t *testing.T) {
	dict := New(
		[]string{"Andrey"},
		[]string{"BoatA", "BoatB"},
		[]string{"Sunset Cruise", "N/A"},
		[]string{"Central Pier"},
	)

	tests := []struct {
		name     string
		category string
		value    string
		expected bool
	}{
		{
			name:     "known boat",
			category: CategoryBoat,
			value:    "BoatA",
			expected: true,
		},
		{
			name:     "unknown boat",
			category: CategoryBoat,
			value:    "Ghost Ship",
			expected: false,
		},
		{
			name:     "known captain",
			category: CategoryCaptain,
			value:    "Andrey",
			expected: true,
		},
		{
			name:     "program from another category",
			category: CategoryProgram,
			value:    "BoatA",
			expected: false,
		},
		{
			name:     "known pier",
			category: CategoryPier,
			value:    "Central Pier",
			expected: true,
		},
		{
			name:     "unknown category",
			category: "weather",
			value:    "sunny",
			expected: false,
		},
		{
			name:     "empty value",
			category: CategoryBoat,
			value:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dict.IsValid(tt.category, tt.value))
		})
	}
}

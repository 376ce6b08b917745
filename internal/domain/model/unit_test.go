package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Leo/need", "structure_unit_leo_need"},
		{"MORE MORE JUMP!", "structure_unit_more_more_jump"},
		{"Vivid BAD SQUAD", "structure_unit_vivid_bad_squad"},
		{"ワンダーランズ×ショウタイム", "structure_unit_wonderlands_showtime"},
		{"25時、ナイトコードで。", "structure_unit_nightcord_at_25"},
	}

	for _, tt := range tests {
		got, ok := UnitKey(tt.name)
		assert.True(t, ok, tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestUnitKeyRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "leo/need", "Leo/need ", "leo_need", "structure_global"} {
		_, ok := UnitKey(name)
		assert.False(t, ok, "%q must be unsupported", name)
	}
}

func TestUnitNames(t *testing.T) {
	names := UnitNames()
	assert.Len(t, names, 5)
	assert.Contains(t, names, "Leo/need")
}

package model

import "sort"

// unitSlugs maps unit display names to the ASCII slug used in store keys.
// It is read-only after init.
var unitSlugs = map[string]string{
	"Leo/need":        "leo_need",
	"MORE MORE JUMP!": "more_more_jump",
	"Vivid BAD SQUAD": "vivid_bad_squad",
	"ワンダーランズ×ショウタイム": "wonderlands_showtime",
	"25時、ナイトコードで。":   "nightcord_at_25",
}

// UnitKey returns the store key for a unit display name. Unknown names are
// rejected, never passed through.
func UnitKey(name string) (string, bool) {
	slug, ok := unitSlugs[name]
	if !ok {
		return "", false
	}

	return UnitKeyPrefix + slug, true
}

// UnitNames lists the supported unit display names in sorted order.
func UnitNames() []string {
	names := make([]string, 0, len(unitSlugs))
	for name := range unitSlugs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

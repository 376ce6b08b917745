package model

import (
	"bytes"
	"encoding/json"
)

// Category is the kind of structure data a request asks for.
type Category string

const (
	CategoryChar   Category = "char"
	CategoryUnit   Category = "unit"
	CategoryGlobal Category = "global"
)

const (
	GlobalKey     = "structure_global"
	CharURLKey    = "structure_char_url"
	UnitKeyPrefix = "structure_unit_"
)

// Query holds the raw request parameters.
type Query struct {
	Type string
	ID   string
}

// Category resolves the dispatch branch for q. A char or unit type without
// an id falls back to the global structure.
func (q Query) Category() Category {
	switch {
	case q.Type == string(CategoryChar) && q.ID != "":
		return CategoryChar
	case q.Type == string(CategoryUnit) && q.ID != "":
		return CategoryUnit
	default:
		return CategoryGlobal
	}
}

// Structure is a retrieval result. Data is passed to the caller untouched.
type Structure struct {
	Data      json.RawMessage
	Cacheable bool
}

// IsFalsy reports whether raw is absent or one of null, false, 0 or "".
// Such values are served as missing, not as data.
func IsFalsy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	default:
		return false
	}
}

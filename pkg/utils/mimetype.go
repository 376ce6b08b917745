package utils

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IsJSON sniffs body and reports whether it is a JSON document. Sub types
// such as application/geo+json count as JSON.
func IsJSON(body []byte) bool {
	for m := mimetype.Detect(body); m != nil; m = m.Parent() {
		if m.Is("application/json") {
			return true
		}
	}

	return false
}

// DetectedType returns the sniffed MIME type of body without parameters.
func DetectedType(body []byte) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	return strings.Split(mimetype.Detect(body).String(), ";")[0]
}

package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy strips every HTML element from user-entered embed text before
// it is rendered into a preview.
var StrictPolicy *bluemonday.Policy

func init() {
	StrictPolicy = bluemonday.StrictPolicy()
}

// SanitizeText removes all HTML from user content. Embed titles,
// descriptions, author and footer text pass through here before rendering.
func SanitizeText(s string) string {
	return StrictPolicy.Sanitize(s)
}

package render

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// PlainText strips markup from a rendered document and collapses whitespace,
// giving the text alternative of the confirmation.
func PlainText(doc string) string {
	stripped := html.UnescapeString(textPolicy.Sanitize(doc))
	return strings.Join(strings.Fields(stripped), " ")
}

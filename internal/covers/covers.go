// Package covers derives external cover-image links for catalog books.
//
// OpenLibrary serves cover images keyed by ISBN, so a cover URL can be
// computed deterministically at creation time without calling any API.
package covers

import (
	"fmt"
	"strings"
)

// urlTemplate is OpenLibrary's large cover image endpoint.
const urlTemplate = "https://covers.openlibrary.org/b/isbn/%s-L.jpg"

// Sanitize strips separators from an ISBN as entered in a form.
// It does not validate length: the cover endpoint tolerates odd
// identifiers, and the original catalog stored them verbatim.
func Sanitize(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	return strings.TrimSpace(isbn)
}

// IsValidISBN reports whether the value looks like an ISBN-10 or ISBN-13
// after sanitizing. Used only by strict validation; cover derivation is
// deliberately lenient.
func IsValidISBN(isbn string) bool {
	s := Sanitize(isbn)
	return len(s) == 10 || len(s) == 13
}

// URLForISBN returns the cover image URL for an ISBN, or the empty
// string when no ISBN was supplied.
func URLForISBN(isbn string) string {
	s := Sanitize(isbn)
	if s == "" {
		return ""
	}
	return fmt.Sprintf(urlTemplate, s)
}

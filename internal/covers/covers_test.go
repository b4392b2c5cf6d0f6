package covers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "9780134685991", Sanitize("978-0-13-468599-1"))
	assert.Equal(t, "9780134685991", Sanitize(" 978 0134685991 "))
	assert.Equal(t, "0000000000", Sanitize("0000000000"))
	assert.Equal(t, "", Sanitize("   "))
}

func TestIsValidISBN(t *testing.T) {
	assert.True(t, IsValidISBN("0000000000"))
	assert.True(t, IsValidISBN("978-0-13-468599-1"))
	assert.False(t, IsValidISBN("123"))
	assert.False(t, IsValidISBN(""))
}

func TestURLForISBN(t *testing.T) {
	t.Run("substitutes the ISBN into the cover template", func(t *testing.T) {
		assert.Equal(t,
			"https://covers.openlibrary.org/b/isbn/0000000000-L.jpg",
			URLForISBN("0000000000"))
	})

	t.Run("strips separators before substituting", func(t *testing.T) {
		assert.Equal(t,
			"https://covers.openlibrary.org/b/isbn/9780134685991-L.jpg",
			URLForISBN("978-0-13-468599-1"))
	})

	t.Run("does not validate length", func(t *testing.T) {
		assert.Equal(t,
			"https://covers.openlibrary.org/b/isbn/123-L.jpg",
			URLForISBN("123"))
	})

	t.Run("returns empty for missing ISBN", func(t *testing.T) {
		assert.Equal(t, "", URLForISBN(""))
		assert.Equal(t, "", URLForISBN("  "))
	})
}

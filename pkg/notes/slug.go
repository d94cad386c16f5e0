package notes

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// SlugSeparator joins the words of a slug.
const SlugSeparator = '_'

// Slugify turns a display title into a filename-safe slug: the title is
// transliterated to ASCII, lowercased and every run of other characters
// collapsed into a single separator. The result only contains [a-z0-9_] and
// never starts or ends with the separator.
func Slugify(title string) string {
	// NFKC first so compatibility forms (fullwidth, ligatures) transliterate as their plain letters
	ascii := unidecode.Unidecode(norm.NFKC.String(title))
	lowered := cases.Lower(language.Und).String(ascii)

	var b strings.Builder
	pending := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteRune(SlugSeparator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

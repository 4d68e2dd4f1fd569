// Package match picks the search result that best fits a user's query.
package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX preceded by a space.
// Standalone "I" and "X" are left alone ("I, Robot", "American History X").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// NormalizeRomanNumerals converts Roman numerals (II-IX) to Arabic numbers.
func NormalizeRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(m string) string {
		if arabic, ok := romanToArabic[strings.ToUpper(strings.TrimSpace(m))]; ok {
			return " " + arabic
		}
		return m
	})
}

// punctuation maps separators to spaces and drops apostrophes.
var punctuation = strings.NewReplacer("&", " and ", "-", " ", ".", " ", "'", "")

var articles = map[string]bool{"the": true, "a": true, "an": true}

// CleanTitle reduces a title to lowercase words for comparison: accents,
// punctuation and leading articles are dropped and Roman numerals become digits.
// Each colon separated part loses its own article ("Léon: The Professional").
func CleanTitle(title string) string {
	s := punctuation.Replace(removeAccents(NormalizeRomanNumerals(strings.ToLower(title))))

	var words []string
	for _, part := range strings.Split(s, ":") {
		fields := strings.Fields(strings.Map(keepWordRune, part))
		if len(fields) > 1 && articles[fields[0]] {
			fields = fields[1:]
		}
		words = append(words, fields...)
	}
	return strings.Join(words, " ")
}

func keepWordRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return r
	}
	return -1
}

// removeAccents builds its transformer per call; chains carry state.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

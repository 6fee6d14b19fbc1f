package toolkit

import (
	"strings"
	"unicode"
)

// SplitWords breaks text into words on separators and on case changes, so
// "hello world", "helloWorld", "hello_world" and "HELLO-WORLD" all yield
// two words. An upper-case run followed by a lower-case letter ends one
// letter early ("HTTPServer" is "HTTP" and "Server").
func SplitWords(text string) []string {
	runes := []rune(text)
	words := make([]string, 0)

	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if len(current) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}

		current = append(current, r)
	}

	flush()

	return words
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(word string) string {
	if word == "" {
		return word
	}

	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func PascalCase(text string) string {
	var b strings.Builder
	for _, word := range SplitWords(text) {
		b.WriteString(Capitalize(word))
	}
	return b.String()
}

func CamelCase(text string) string {
	words := SplitWords(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(Capitalize(word))
	}
	return b.String()
}

func SnakeCase(text string) string {
	return joinLower(SplitWords(text), "_")
}

func KebabCase(text string) string {
	return joinLower(SplitWords(text), "-")
}

func ConstantCase(text string) string {
	return strings.ToUpper(joinLower(SplitWords(text), "_"))
}

func TitleCase(text string) string {
	words := SplitWords(text)
	for i, word := range words {
		words[i] = Capitalize(word)
	}
	return strings.Join(words, " ")
}

func joinLower(words []string, separator string) string {
	lowered := make([]string, len(words))
	for i, word := range words {
		lowered[i] = strings.ToLower(word)
	}
	return strings.Join(lowered, separator)
}

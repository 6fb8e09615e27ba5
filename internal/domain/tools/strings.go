package tools

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type stringTool func(text string) any

var sentenceEndings = regexp.MustCompile(`[.!?]+`)

var stringTools = map[string]stringTool{
	"count_vowels": func(text string) any {
		count := 0
		for _, r := range text {
			if isVowel(r) {
				count++
			}
		}
		return count
	},
	// "y" counts as a consonant here.
	"count_consonants": func(text string) any {
		count := 0
		for _, r := range text {
			if unicode.IsLetter(r) && !isVowel(r) {
				count++
			}
		}
		return count
	},
	"count_letters": func(text string) any {
		count := 0
		for _, r := range text {
			if unicode.IsLetter(r) {
				count++
			}
		}
		return count
	},
	"count_words": func(text string) any {
		return len(strings.Fields(text))
	},
	"count_sentences": func(text string) any {
		return len(sentenceEndings.FindAllString(text, -1))
	},
	"count_characters": func(text string) any {
		return utf8.RuneCountInString(text)
	},
	"reverse_string": func(text string) any {
		runes := []rune(text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	},
	"is_palindrome": func(text string) any {
		normalized := strings.ToLower(strings.ReplaceAll(text, " ", ""))
		runes := []rune(normalized)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			if runes[i] != runes[j] {
				return false
			}
		}
		return true
	},
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

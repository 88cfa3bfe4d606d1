// Package analyzer turns raw card rules text into a canonical form and
// a set of detected ability features.
package analyzer

import "strings"

// fullToHalfPunct maps the full-width punctuation the rules text uses
// to its ASCII form. Pairs are positional between the two strings.
const (
	fullPunct = "！＃＄％＆（）＊＋，－．／：；＜＝＞？＠［＼］＾＿｛｜｝～"
	halfPunct = "!#$%&()*+,-./:;<=>?@[\\]^_{|}~"
)

var punctFold = func() map[rune]rune {
	m := make(map[rune]rune)
	half := []rune(halfPunct)
	for i, r := range []rune(fullPunct) {
		m[r] = half[i]
	}
	return m
}()

// Normalize folds full-width letters, digits, the ideographic space and
// a fixed punctuation list to their half-width equivalents. Kana, kanji
// and symbol brackets such as 【】 and 《》 pass through unchanged.
// Total and idempotent: the folded output contains no foldable runes.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

func foldRune(r rune) rune {
	switch {
	case r >= 'Ａ' && r <= 'Ｚ':
		return r - 'Ａ' + 'A'
	case r >= 'ａ' && r <= 'ｚ':
		return r - 'ａ' + 'a'
	case r >= '０' && r <= '９':
		return r - '０' + '0'
	case r == '　':
		return ' '
	}
	if h, ok := punctFold[r]; ok {
		return h
	}
	return r
}

package panel

import (
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth is the wrap width used where a builder has no reason to
// deviate.
const DefaultWrapWidth = 26

// Wrap breaks value into display lines of at most width runes. Break points
// are tried in order of how well AWS identifiers tolerate them: hyphen
// groups first, then underscores, then whitespace. Fragments longer than
// width with no break point are kept whole rather than cut mid-word.
func Wrap(value string, width int) []string {
	if value == "" {
		return nil
	}
	lines := splitOnDelimiter(value, "-", width)
	var refined []string
	for _, line := range lines {
		switch {
		case runeLen(line) > width && strings.Contains(line, "_"):
			refined = append(refined, splitOnDelimiter(line, "_", width)...)
		case runeLen(line) > width && strings.Contains(line, " "):
			refined = append(refined, wrapWords(line, width)...)
		default:
			refined = append(refined, line)
		}
	}
	if len(refined) == 0 {
		return []string{value}
	}
	return refined
}

// splitOnDelimiter regroups delimiter-separated segments into lines no
// longer than width, keeping the delimiter between joined segments.
func splitOnDelimiter(text, delim string, width int) []string {
	var lines []string
	current := ""
	for _, part := range strings.Split(text, delim) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		candidate := part
		if current != "" {
			candidate = current + delim + part
		}
		if runeLen(candidate) <= width || current == "" {
			current = candidate
		} else {
			lines = append(lines, current)
			current = part
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

// wrapWords greedily fills lines from whitespace-separated words. A single
// word longer than width occupies its own line untouched.
func wrapWords(text string, width int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if runeLen(candidate) <= width || current == "" {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

package intent

import (
	"strings"
)

var modePrefixes = []string{"detail", "basic"}

// platformPrefixes are checked in order; "gpt" comes last so "gpt" inside
// "chatgpt" is never matched first.
var platformPrefixes = []struct {
	prefix   string
	platform string
}{
	{"chatgpt", "chatgpt"},
	{"claude", "claude"},
	{"gemini", "gemini"},
	{"gpt", "chatgpt"},
}

const usingKeyword = "using"

// Parse splits a line of the form "[DETAIL|BASIC] using [Platform] - prompt".
// Every part but the prompt is optional and matched by case-insensitive
// prefix; anything unrecognised is left in the prompt.
func Parse(line string) *Intent {
	in := New(strings.TrimSpace(line))
	rest := in.RawPrompt

	for _, m := range modePrefixes {
		if hasPrefixFold(rest, m) {
			in.Mode = m
			rest = strings.TrimSpace(rest[len(m):])
			break
		}
	}

	if hasPrefixFold(rest, usingKeyword+" ") {
		rest = strings.TrimSpace(rest[len(usingKeyword):])
		for _, p := range platformPrefixes {
			if hasPrefixFold(rest, p.prefix) {
				in.Platform = p.platform
				rest = strings.TrimSpace(rest[len(p.prefix):])
				break
			}
		}
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "-"))
	}

	in.Prompt = rest
	return in
}

// IsQuit reports whether line asks to leave the interactive loop.
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

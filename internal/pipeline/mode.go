package pipeline

import (
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
)

var (
	simpleIndicators  = []string{"write", "create", "make"}
	complexIndicators = []string{"professional", "business", "technical", "comprehensive", "detailed"}
)

// AutoDetectMode picks basic for short creation requests and detail for long
// or professional ones. Anything in between stays basic.
func AutoDetectMode(prompt string) config.Mode {
	words := analysis.WordCount(prompt)
	lower := strings.ToLower(prompt)

	if words < 15 && containsAny(lower, simpleIndicators) {
		return config.ModeBasic
	}
	if words > 25 || containsAny(lower, complexIndicators) {
		return config.ModeDetail
	}
	return config.ModeBasic
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

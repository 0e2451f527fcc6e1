// Package analysis extracts heuristic features from a raw prompt: intent,
// entities, context, requirements, constraints, clarity issues, task type
// and a 0-10 complexity score. Everything here is pattern matching; there is
// no language model involved.
package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clarity issue messages, reported in this order.
const (
	IssueVague    = "Contains vague terms"
	IssueBrief    = "Very brief - may lack necessary context"
	IssueNoFormat = "Output format not specified"
	IssuePronouns = "Contains potentially ambiguous pronouns"
)

const (
	maxEntities = 10
	// intentFallback is how many characters stand in for the intent when
	// no verb matches and there is no sentence break.
	intentFallback = 100
)

var intentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(write|create|generate|make|build|develop|design|draft|compose)\b.*`),
	regexp.MustCompile(`\b(analyze|review|evaluate|assess|examine|study)\b.*`),
	regexp.MustCompile(`\b(explain|describe|summarize|outline|clarify)\b.*`),
	regexp.MustCompile(`\b(help|assist|guide|support)\b.*`),
	regexp.MustCompile(`\b(improve|optimize|enhance|refine|fix)\b.*`),
}

var entityStopwords = map[string]bool{"the": true, "a": true, "an": true, "i": true}

var domainNouns = []string{
	"email", "report", "code", "essay", "article", "blog", "resume",
	"letter", "proposal", "presentation", "analysis", "summary",
	"review", "plan", "strategy", "design", "system",
}

var detailCues = []string{"because", "for", "about", "regarding", "context"}

type requirementPattern struct {
	category string
	re       *regexp.Regexp
}

var requirementPatterns = []requirementPattern{
	{"Length", regexp.MustCompile(`(\d+)\s*(words|pages|paragraphs|sentences)`)},
	{"Format", regexp.MustCompile(`(format|formatted|structure|template)`)},
	{"Tone", regexp.MustCompile(`(tone|formal|casual|professional|friendly|persuasive)`)},
	{"Audience", regexp.MustCompile(`(audience|for|target|readers)`)},
	{"Style", regexp.MustCompile(`(style|writing style|approach)`)},
}

var constraintIndicators = []string{
	"must", "should", "need to", "required", "limit", "only",
	"avoid", "without", "don't", "cannot", "restriction",
}

var (
	vagueTerms       = []string{"something", "anything", "stuff", "thing", "somehow", "whatever"}
	formatIndicators = []string{"format", "structure", "output", "return", "give me", "provide"}
	pronounPattern   = regexp.MustCompile(`\b(it|this|that|they|them)\b`)
)

// taskRules are evaluated top to bottom; the first match wins.
var taskRules = []struct {
	task     TaskType
	keywords []string
}{
	{TaskCreative, []string{"story", "creative", "imagine", "invent", "design", "brainstorm", "idea", "novel", "poem", "art"}},
	{TaskTechnical, []string{"code", "program", "debug", "algorithm", "function", "api", "technical", "system", "implementation", "architecture"}},
	{TaskAnalytical, []string{"analyze", "compare", "evaluate", "assess", "research", "data", "statistics", "metrics", "performance"}},
	{TaskEducational, []string{"explain", "teach", "learn", "understand", "tutorial", "lesson", "guide", "instruction", "how to"}},
}

// Deconstruct analyses prompt. It accepts any string, including "".
func Deconstruct(prompt string) *Analysis {
	lower := strings.ToLower(prompt)
	words := WordCount(prompt)

	issues := clarityIssues(lower, words)
	task := taskType(lower, words, SentenceCount(prompt))

	return &Analysis{
		CoreIntent:         coreIntent(prompt, lower),
		KeyEntities:        entities(prompt, lower),
		ContextLevel:       contextLevel(lower, words),
		OutputRequirements: requirements(lower),
		Constraints:        constraints(prompt),
		ClarityIssues:      issues,
		TaskType:           task,
		ComplexityScore:    complexity(words, len(issues), task),
	}
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SentenceCount counts the pieces produced by splitting on '.', so a
// prompt ending in a period counts its trailing empty piece.
func SentenceCount(s string) int {
	return len(strings.Split(s, "."))
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func coreIntent(prompt, lower string) string {
	for _, re := range intentPatterns {
		if m := re.FindString(lower); m != "" {
			return strings.TrimSpace(m)
		}
	}

	if i := strings.IndexByte(prompt, '.'); i >= 0 {
		return strings.TrimSpace(prompt[:i])
	}
	if utf8.RuneCountInString(prompt) > intentFallback {
		return strings.TrimSpace(string([]rune(prompt)[:intentFallback]))
	}
	return strings.TrimSpace(prompt)
}

func entities(prompt, lower string) []string {
	var found []string
	seen := make(map[string]bool)
	add := func(e string) {
		if e == "" || seen[e] {
			return
		}
		seen[e] = true
		found = append(found, e)
	}

	for _, word := range strings.Fields(prompt) {
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) {
			continue
		}
		word = strings.Trim(word, ".,!?;:")
		if entityStopwords[strings.ToLower(word)] {
			continue
		}
		add(word)
	}

	for _, noun := range domainNouns {
		if strings.Contains(lower, noun) {
			add(noun)
		}
	}

	if len(found) > maxEntities {
		found = found[:maxEntities]
	}
	return found
}

func contextLevel(lower string, words int) ContextLevel {
	hasDetails := containsAny(lower, detailCues)
	switch {
	case words > 50 && hasDetails:
		return ContextHigh
	case words > 20 || hasDetails:
		return ContextMedium
	default:
		return ContextLow
	}
}

func requirements(lower string) []string {
	var reqs []string
	for _, p := range requirementPatterns {
		if m := p.re.FindString(lower); m != "" {
			reqs = append(reqs, fmt.Sprintf("%s: %s", p.category, m))
		}
	}
	return reqs
}

func constraints(prompt string) []string {
	var out []string
	for _, sentence := range strings.Split(prompt, ".") {
		if containsAny(strings.ToLower(sentence), constraintIndicators) {
			out = append(out, strings.TrimSpace(sentence))
		}
	}
	return out
}

func clarityIssues(lower string, words int) []string {
	var issues []string
	if containsAny(lower, vagueTerms) {
		issues = append(issues, IssueVague)
	}
	if words < 5 {
		issues = append(issues, IssueBrief)
	}
	if !containsAny(lower, formatIndicators) {
		issues = append(issues, IssueNoFormat)
	}
	if pronounPattern.MatchString(lower) {
		issues = append(issues, IssuePronouns)
	}
	return issues
}

func taskType(lower string, words, sentences int) TaskType {
	for _, rule := range taskRules {
		if containsAny(lower, rule.keywords) {
			return rule.task
		}
	}
	if words > 30 || sentences > 2 {
		return TaskComplex
	}
	return TaskSimple
}

func complexity(words, issues int, task TaskType) int {
	score := 5

	if words < 10 {
		score -= 2
	} else if words > 50 {
		score += 2
	}

	score += issues

	switch task {
	case TaskTechnical, TaskComplex:
		score += 2
	case TaskSimple:
		score -= 2
	}

	return max(MinComplexity, min(MaxComplexity, score))
}

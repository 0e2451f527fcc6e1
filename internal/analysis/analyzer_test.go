package analysis

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeconstructHelp(t *testing.T) {
	got := Deconstruct("Help")

	want := &Analysis{
		CoreIntent:    "help",
		KeyEntities:   []string{"Help"},
		ContextLevel:  ContextLow,
		ClarityIssues: []string{IssueBrief, IssueNoFormat},
		TaskType:      TaskSimple,
		// 5 - 2 (short) + 2 (issues) - 2 (simple)
		ComplexityScore: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deconstruct(\"Help\") mismatch (-want +got):\n%s", diff)
	}
}

func TestDeconstructEmpty(t *testing.T) {
	got := Deconstruct("")

	assert.Equal(t, "", got.CoreIntent)
	assert.Empty(t, got.KeyEntities)
	assert.Equal(t, ContextLow, got.ContextLevel)
	assert.Equal(t, []string{IssueBrief, IssueNoFormat}, got.ClarityIssues)
	assert.Equal(t, TaskSimple, got.TaskType)
	assert.Equal(t, 3, got.ComplexityScore)
}

func TestDeconstructTechnical(t *testing.T) {
	got := Deconstruct("Help me fix my Python code that's not working")

	want := &Analysis{
		CoreIntent:      "help me fix my python code that's not working",
		KeyEntities:     []string{"Help", "Python", "code"},
		ContextLevel:    ContextLow,
		ClarityIssues:   []string{IssueNoFormat, IssuePronouns},
		TaskType:        TaskTechnical,
		ComplexityScore: 7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCoreIntent(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"creation verb", "Please Write a blog post about Go", "write a blog post about go"},
		{"creation beats later groups", "Help me write a poem", "write a poem"},
		{"analysis verb", "Can you review my essay", "review my essay"},
		{"improvement verb", "fix the login flow", "fix the login flow"},
		{"first sentence fallback", "Quarterly numbers. Next steps", "Quarterly numbers"},
		{"whole word only", "rewrite everything", "rewrite everything"},
		{"long fallback truncated", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deconstruct(tt.prompt).CoreIntent)
		})
	}
}

func TestEntities(t *testing.T) {
	got := Deconstruct("Send the Report to Alice and Bob. The report covers the Plan.")
	assert.Equal(t, []string{"Send", "Report", "Alice", "Bob", "Plan", "report", "plan"}, got.KeyEntities)
}

func TestEntitiesCapped(t *testing.T) {
	got := Deconstruct("Alpha Beta Gamma Delta Epsilon Zeta Eta Theta Iota Kappa Lambda")
	require.Len(t, got.KeyEntities, 10)
	assert.Equal(t, "Alpha", got.KeyEntities[0])
	assert.Equal(t, "Kappa", got.KeyEntities[9])
}

func TestEntitiesDeduplicated(t *testing.T) {
	got := Deconstruct("Email Email email")
	assert.Equal(t, []string{"Email", "email"}, got.KeyEntities)
}

func TestContextLevel(t *testing.T) {
	long := strings.Repeat("word ", 55)

	assert.Equal(t, ContextHigh, Deconstruct(long+"because reasons").ContextLevel)
	assert.Equal(t, ContextMedium, Deconstruct(long).ContextLevel)
	assert.Equal(t, ContextMedium, Deconstruct("a note about cats").ContextLevel)
	assert.Equal(t, ContextLow, Deconstruct("a note on cats").ContextLevel)
}

func TestOutputRequirements(t *testing.T) {
	got := Deconstruct("Write a formal email for investors in 200 words with a friendly style")
	assert.Equal(t, []string{
		"Length: 200 words",
		"Tone: formal",
		"Audience: for",
		"Style: style",
	}, got.OutputRequirements)
}

func TestConstraints(t *testing.T) {
	got := Deconstruct("Write a blog post. It must be under 500 words. Avoid jargon.")
	assert.Equal(t, []string{"It must be under 500 words", "Avoid jargon"}, got.Constraints)
}

func TestClarityIssuesOrder(t *testing.T) {
	got := Deconstruct("do something with it")
	assert.Equal(t, []string{IssueVague, IssueBrief, IssueNoFormat, IssuePronouns}, got.ClarityIssues)

	got = Deconstruct("Please provide a list of the five largest rivers in Europe")
	assert.Empty(t, got.ClarityIssues)
}

func TestPronounsWholeWordOnly(t *testing.T) {
	got := Deconstruct("Provide the items list thesis theme")
	assert.NotContains(t, got.ClarityIssues, IssuePronouns)
}

func TestTaskType(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   TaskType
	}{
		{"creative beats technical", "write a story about code", TaskCreative},
		{"technical", "debug this function", TaskTechnical},
		{"analytical", "compare these metrics", TaskAnalytical},
		{"educational", "teach me how to knit", TaskEducational},
		{"complex by sentences", "One. Two. Three.", TaskComplex},
		{"complex by length", strings.Repeat("word ", 31), TaskComplex},
		{"simple", "Write email", TaskSimple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deconstruct(tt.prompt).TaskType)
		})
	}
}

func TestComplexityScore(t *testing.T) {
	// 5 - 2 (short) + 4 (issues) + 2 (technical)
	assert.Equal(t, 9, Deconstruct("Fix this code somehow").ComplexityScore)

	// 5 + 2 (long) + 3 (issues) + 2 (complex) saturates at 10
	long := "Do it. " + strings.Repeat("then something else happens ", 15)
	got := Deconstruct(long)
	assert.Equal(t, TaskComplex, got.TaskType)
	assert.Equal(t, MaxComplexity, got.ComplexityScore)
	assert.True(t, got.IsComplex())
}

func TestComplexityAlwaysInRange(t *testing.T) {
	prompts := []string{
		"",
		" ",
		"Help",
		"Write email",
		strings.Repeat("something it this that stuff ", 40),
		strings.Repeat("Design a System. ", 30),
		"explain quantum physics to a child because they asked about it",
	}

	for _, p := range prompts {
		score := Deconstruct(p).ComplexityScore
		assert.GreaterOrEqual(t, score, MinComplexity, p)
		assert.LessOrEqual(t, score, MaxComplexity, p)
	}
}

func TestDeconstructIsPure(t *testing.T) {
	p := "Write a persuasive blog post for developers about Go. Avoid jargon."
	if diff := cmp.Diff(Deconstruct(p), Deconstruct(p)); diff != "" {
		t.Errorf("Deconstruct not deterministic:\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount(" a\tb\nc "))
	assert.Equal(t, 1, SentenceCount("no period"))
	assert.Equal(t, 3, SentenceCount("One. Two."))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "creative", TaskCreative.String())
	assert.Equal(t, "simple", TaskSimple.String())
	assert.Equal(t, "High", ContextHigh.String())

	text, err := TaskEducational.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "educational", string(text))
}

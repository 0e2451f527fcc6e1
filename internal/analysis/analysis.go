package analysis

// TaskType classifies what kind of work a prompt asks for.
type TaskType int

const (
	TaskSimple TaskType = iota
	TaskCreative
	TaskTechnical
	TaskAnalytical
	TaskEducational
	TaskComplex
)

func (t TaskType) String() string {
	switch t {
	case TaskCreative:
		return "creative"
	case TaskTechnical:
		return "technical"
	case TaskAnalytical:
		return "analytical"
	case TaskEducational:
		return "educational"
	case TaskComplex:
		return "complex"
	default:
		return "simple"
	}
}

func (t TaskType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ContextLevel is how much background a prompt carries.
type ContextLevel int

const (
	ContextLow ContextLevel = iota
	ContextMedium
	ContextHigh
)

func (c ContextLevel) String() string {
	switch c {
	case ContextHigh:
		return "High"
	case ContextMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func (c ContextLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Analysis is the structured reading of a single prompt. It is built once
// by Deconstruct and not modified afterwards.
type Analysis struct {
	CoreIntent         string       `json:"core_intent"`
	KeyEntities        []string     `json:"key_entities"`
	ContextLevel       ContextLevel `json:"context_level"`
	OutputRequirements []string     `json:"output_requirements"`
	Constraints        []string     `json:"constraints"`
	ClarityIssues      []string     `json:"clarity_issues"`
	TaskType           TaskType     `json:"task_type"`
	ComplexityScore    int          `json:"complexity_score"`
}

// Complexity bounds.
const (
	MinComplexity = 0
	MaxComplexity = 10

	// HighComplexity is the score above which a prompt counts as complex.
	HighComplexity = 7
)

// IsComplex reports whether the score is above HighComplexity.
func (a *Analysis) IsComplex() bool {
	return a.ComplexityScore > HighComplexity
}

package intent

// Intent holds one line the user typed, split into its parts
type Intent struct {
	// The raw line from the user
	RawPrompt string

	// Prompt is the text to optimize, with any mode and platform prefix removed
	Prompt string

	// Platform and Mode as written by the user, "" when not given
	Platform string
	Mode     string
}

// New creates a new intent from a raw line with no prefix
func New(prompt string) *Intent {
	return &Intent{
		RawPrompt: prompt,
		Prompt:    prompt,
	}
}

// PlatformOr returns the parsed platform, or fallback when none was given
func (i *Intent) PlatformOr(fallback string) string {
	if i.Platform == "" {
		return fallback
	}
	return i.Platform
}

// ModeOr returns the parsed mode, or fallback when none was given
func (i *Intent) ModeOr(fallback string) string {
	if i.Mode == "" {
		return fallback
	}
	return i.Mode
}

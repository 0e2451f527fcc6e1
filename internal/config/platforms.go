package config

import "strings"

// Platform is the downstream generative text system a prompt is tailored for.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformChatGPT
	PlatformClaude
	PlatformGemini
)

func (p Platform) String() string {
	switch p {
	case PlatformChatGPT:
		return "chatgpt"
	case PlatformClaude:
		return "claude"
	case PlatformGemini:
		return "gemini"
	default:
		return "other"
	}
}

// Mode controls how much the optimizer expands a prompt.
type Mode int

const (
	ModeBasic Mode = iota
	ModeDetail
)

// ModeAuto is the sentinel mode name resolved per prompt before analysis.
const ModeAuto = "auto"

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "basic"
}

type PlatformInfo struct {
	ID          string
	Platform    Platform
	Name        string
	Description string
	Aliases     []string
}

var Platforms = []PlatformInfo{
	{
		ID:          "chatgpt",
		Platform:    PlatformChatGPT,
		Name:        "ChatGPT",
		Description: "Structured sections, no extra framing",
		Aliases:     []string{"gpt"},
	},
	{
		ID:          "claude",
		Platform:    PlatformClaude,
		Name:        "Claude",
		Description: "Adds a reasoning approach for complex requests",
	},
	{
		ID:          "gemini",
		Platform:    PlatformGemini,
		Name:        "Gemini",
		Description: "Encourages exploration on creative tasks",
	},
	{
		ID:          "other",
		Platform:    PlatformOther,
		Name:        "Other",
		Description: "Platform-neutral output",
	},
}

func GetPlatform(id string) *PlatformInfo {
	for _, p := range Platforms {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// ParsePlatform maps free text onto a Platform by case-insensitive substring,
// so "GPT-4" is ChatGPT and "Claude Opus" is Claude. Anything unrecognised is
// PlatformOther.
func ParsePlatform(s string) Platform {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "chatgpt"), strings.Contains(lower, "gpt"):
		return PlatformChatGPT
	case strings.Contains(lower, "claude"):
		return PlatformClaude
	case strings.Contains(lower, "gemini"):
		return PlatformGemini
	}
	return PlatformOther
}

// ParseMode returns ModeDetail for any string containing "detail", else ModeBasic.
func ParseMode(s string) Mode {
	if strings.Contains(strings.ToLower(s), "detail") {
		return ModeDetail
	}
	return ModeBasic
}

func IsAutoMode(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), ModeAuto)
}

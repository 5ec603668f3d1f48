package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/import_v1.txt
var importPromptV1 string

const resumeTextPlaceholder = "{{RESUME_TEXT}}"

// BuildImportPrompt renders the resume-import prompt around the given resume text.
// The text is embedded verbatim and the result depends on nothing but its input.
func BuildImportPrompt(resumeText string) string {
	return strings.Replace(importPromptV1, resumeTextPlaceholder, resumeText, 1)
}

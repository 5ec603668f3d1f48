package imports

import (
	"fmt"
	"strings"
)

// PlainText renders the parts of a record that matter for reading or analysis
// as plain text. Empty parts are left out.
func PlainText(rec Record) string {
	var parts []string

	pi := rec.PersonalInfo
	if pi.FullName != "" {
		parts = append(parts, "Name: "+pi.FullName)
	}
	if pi.Email != "" {
		parts = append(parts, "Email: "+pi.Email)
	}
	if pi.Summary != "" {
		parts = append(parts, "\nSummary:\n"+pi.Summary)
	}

	if len(rec.Experience) > 0 {
		parts = append(parts, "\nExperience:")
		for _, item := range rec.Experience {
			parts = append(parts, fmt.Sprintf("- %s at %s", EntryField(item, "title"), EntryField(item, "company")))
			if desc := EntryField(item, "description"); desc != "" {
				parts = append(parts, "  "+desc)
			}
		}
	}

	if len(rec.Education) > 0 {
		parts = append(parts, "\nEducation:")
		for _, item := range rec.Education {
			parts = append(parts, fmt.Sprintf("- %s in %s from %s", EntryField(item, "degree"), EntryField(item, "field"), EntryField(item, "institution")))
		}
	}

	if len(rec.Skills.Technical) > 0 {
		parts = append(parts, "\nTechnical Skills: "+strings.Join(rec.Skills.Technical, ", "))
	}
	if len(rec.Skills.Soft) > 0 {
		parts = append(parts, "Soft Skills: "+strings.Join(rec.Skills.Soft, ", "))
	}

	return strings.Join(parts, "\n")
}

// EntryField reads a scalar field of a sequence entry for display. Entries that
// are not objects, missing keys and nested values all read as "".
func EntryField(item any, key string) string {
	entry, _ := item.(map[string]any)
	switch v := entry[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

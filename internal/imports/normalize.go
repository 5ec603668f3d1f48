package imports

// Normalize maps a loosely typed decoded object onto Record. Every field is
// checked for presence and type on its own; anything missing, null, or of the
// wrong type takes its default. Unknown keys are dropped.
func Normalize(obj map[string]any) Record {
	out := EmptyRecord()

	personal := objectField(obj, "personalInfo")
	out.PersonalInfo = PersonalInfo{
		FullName:  stringField(personal, "fullName"),
		Email:     stringField(personal, "email"),
		Phone:     stringField(personal, "phone"),
		Location:  stringField(personal, "location"),
		LinkedIn:  stringField(personal, "linkedin"),
		GitHub:    stringField(personal, "github"),
		Portfolio: stringField(personal, "portfolio"),
		Summary:   stringField(personal, "summary"),
	}

	out.Education = listField(obj, "education")
	out.Experience = listField(obj, "experience")
	out.Projects = listField(obj, "projects")
	out.Achievements = listField(obj, "achievements")

	skills := objectField(obj, "skills")
	out.Skills = Skills{
		Technical: stringListField(skills, "technical"),
		Soft:      stringListField(skills, "soft"),
		Languages: stringListField(skills, "languages"),
	}
	return out
}

func objectField(obj map[string]any, key string) map[string]any {
	if v, ok := obj[key].(map[string]any); ok {
		return v
	}
	return nil
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

// listField passes a sequence through untouched; elements are not inspected.
func listField(obj map[string]any, key string) []any {
	if v, ok := obj[key].([]any); ok {
		return v
	}
	return []any{}
}

// stringListField keeps the string elements of a sequence, in order.
func stringListField(obj map[string]any, key string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

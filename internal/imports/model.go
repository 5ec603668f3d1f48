package imports

// Record is the canonical structured resume returned for every import.
type Record struct {
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Education    []any        `json:"education" yaml:"education"`
	Experience   []any        `json:"experience" yaml:"experience"`
	Projects     []any        `json:"projects" yaml:"projects"`
	Skills       Skills       `json:"skills" yaml:"skills"`
	Achievements []any        `json:"achievements" yaml:"achievements"`
}

// PersonalInfo holds the fixed contact and summary fields.
type PersonalInfo struct {
	FullName  string `json:"fullName" yaml:"fullName"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Location  string `json:"location" yaml:"location"`
	LinkedIn  string `json:"linkedin" yaml:"linkedin"`
	GitHub    string `json:"github" yaml:"github"`
	Portfolio string `json:"portfolio" yaml:"portfolio"`
	Summary   string `json:"summary" yaml:"summary"`
}

// Skills groups skill names by kind.
type Skills struct {
	Technical []string `json:"technical" yaml:"technical"`
	Soft      []string `json:"soft" yaml:"soft"`
	Languages []string `json:"languages" yaml:"languages"`
}

// EmptyRecord returns the all-defaults record used whenever no real data is available.
// Every sequence is non-nil so it serializes as [] rather than null.
func EmptyRecord() Record {
	return Record{
		Education:    []any{},
		Experience:   []any{},
		Projects:     []any{},
		Skills:       Skills{Technical: []string{}, Soft: []string{}, Languages: []string{}},
		Achievements: []any{},
	}
}

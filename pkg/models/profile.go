package models

// EnrichResponse is the provider envelope for a people-enrichment lookup.
type EnrichResponse struct {
	StatusCode int      `json:"status_code,omitempty"`
	Profile    *Profile `json:"profile,omitempty"`
}

// Profile is the enriched person record. Every field is optional: the
// provider omits anything it does not know, and absence is preserved as nil
// until render time so downstream consumers can distinguish missing from
// empty.
type Profile struct {
	FullName    *string      `json:"full_name,omitempty"`
	Headline    *string      `json:"headline,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Industry    *string      `json:"industry,omitempty"`
	Seniority   *string      `json:"seniority,omitempty"`
	JobFunction *string      `json:"job_function,omitempty"`
	Summary     *string      `json:"summary,omitempty"`
	Email       []string     `json:"email,omitempty"`
	WorkEmail   []string     `json:"work_email,omitempty"`
	Phone       []string     `json:"phone,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Company     *Company     `json:"company,omitempty"`
}

// Company is the employer record attached to a profile, when present.
type Company struct {
	Name        *string `json:"name,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	FoundedAt   *int    `json:"founded_at,omitempty"`
	Headquarter *string `json:"headquarter,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Size        *string `json:"size,omitempty"`
	Overview    *string `json:"overview,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// Education is one schooling entry.
type Education struct {
	SchoolName   *string `json:"school_name,omitempty"`
	Degree       *string `json:"degree,omitempty"`
	FieldOfStudy *string `json:"field_of_study,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Title       *string `json:"title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

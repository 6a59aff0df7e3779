package report

import (
	"strconv"
	"strings"

	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// NA is the sentinel rendered for any field the provider did not return.
const NA = "N/A"

// ReportData is the fixed template schema. Every field is display-safe: the
// template never branches on presence, so the mapping below must be total.
type ReportData struct {
	Profile ProfileView
	Company CompanyView
}

// ProfileView holds the defaulted person fields.
type ProfileView struct {
	FullName    string
	Headline    string
	Location    string
	Industry    string
	Seniority   string
	JobFunction string
	Summary     string
	Email       string
	WorkEmail   string
	Phone       string
	Skills      []string
	Education   []EducationView
	Experience  []ExperienceView
}

// CompanyView holds the defaulted company fields. When the profile has no
// company record the whole block is synthesized as N/A values so the template
// layout stays structurally complete.
type CompanyView struct {
	Name        string
	Domain      string
	FoundedAt   string
	Headquarter string
	Industry    string
	Size        string
	Overview    string
	Website     string
}

type EducationView struct {
	SchoolName   string
	Degree       string
	FieldOfStudy string
	Period       string
}

type ExperienceView struct {
	Title       string
	CompanyName string
	Location    string
	Period      string
	Description string
}

// BuildReportData maps a possibly partial profile into the template schema,
// substituting the N/A sentinel for every absent value.
func BuildReportData(p *models.Profile) ReportData {
	if p == nil {
		p = &models.Profile{}
	}

	data := ReportData{
		Profile: ProfileView{
			FullName:    stringOrNA(p.FullName),
			Headline:    stringOrNA(p.Headline),
			Location:    stringOrNA(p.Location),
			Industry:    stringOrNA(p.Industry),
			Seniority:   stringOrNA(p.Seniority),
			JobFunction: stringOrNA(p.JobFunction),
			Summary:     stringOrNA(p.Summary),
			Email:       joinOrNA(p.Email),
			WorkEmail:   joinOrNA(p.WorkEmail),
			Phone:       joinOrNA(p.Phone),
			Skills:      p.Skills,
		},
		Company: buildCompanyView(p.Company),
	}

	for _, e := range p.Education {
		data.Profile.Education = append(data.Profile.Education, EducationView{
			SchoolName:   stringOrNA(e.SchoolName),
			Degree:       stringOrNA(e.Degree),
			FieldOfStudy: stringOrNA(e.FieldOfStudy),
			Period:       period(e.StartDate, e.EndDate),
		})
	}

	for _, e := range p.Experience {
		data.Profile.Experience = append(data.Profile.Experience, ExperienceView{
			Title:       stringOrNA(e.Title),
			CompanyName: stringOrNA(e.CompanyName),
			Location:    stringOrNA(e.Location),
			Period:      period(e.StartDate, e.EndDate),
			Description: stringOrNA(e.Description),
		})
	}

	return data
}

func buildCompanyView(c *models.Company) CompanyView {
	if c == nil {
		return CompanyView{
			Name:        NA,
			Domain:      NA,
			FoundedAt:   NA,
			Headquarter: NA,
			Industry:    NA,
			Size:        NA,
			Overview:    NA,
			Website:     NA,
		}
	}
	return CompanyView{
		Name:        stringOrNA(c.Name),
		Domain:      stringOrNA(c.Domain),
		FoundedAt:   intOrNA(c.FoundedAt),
		Headquarter: stringOrNA(c.Headquarter),
		Industry:    stringOrNA(c.Industry),
		Size:        stringOrNA(c.Size),
		Overview:    stringOrNA(c.Overview),
		Website:     stringOrNA(c.Website),
	}
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return NA
	}
	return *s
}

func intOrNA(n *int) string {
	if n == nil {
		return NA
	}
	return strconv.Itoa(*n)
}

// joinOrNA collapses a contact-value sequence into one display string. An
// absent sequence and a present-but-empty one render identically.
func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NA
	}
	return strings.Join(values, ", ")
}

func period(start, end *string) string {
	return stringOrNA(start) + " - " + stringOrNA(end)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// ==========================
// Test Helper Functions
// ==========================

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ==========================
// View Mapping Tests
// ==========================

func TestBuildReportData_NilProfile(t *testing.T) {
	data := BuildReportData(nil)

	assert.Equal(t, NA, data.Profile.FullName)
	assert.Equal(t, NA, data.Profile.Headline)
	assert.Equal(t, NA, data.Profile.Email)
	assert.Equal(t, NA, data.Profile.Phone)
	assert.Empty(t, data.Profile.Education)
	assert.Empty(t, data.Profile.Experience)

	// A profile without a company still renders a complete company block.
	assert.Equal(t, NA, data.Company.Name)
	assert.Equal(t, NA, data.Company.FoundedAt)
	assert.Equal(t, NA, data.Company.Website)
}

func TestBuildReportData_FullProfile(t *testing.T) {
	profile := &models.Profile{
		FullName:  strPtr("Jane Doe"),
		Headline:  strPtr("Staff Engineer"),
		Location:  strPtr("Berlin"),
		Email:     []string{"jane@example.com", "jd@example.com"},
		WorkEmail: []string{"jane@corp.example"},
		Skills:    []string{"Go", "Kubernetes"},
		Company: &models.Company{
			Name:      strPtr("Example Corp"),
			FoundedAt: intPtr(2009),
		},
		Education: []models.Education{
			{
				SchoolName: strPtr("TU Berlin"),
				Degree:     strPtr("BSc"),
				StartDate:  strPtr("2010"),
				EndDate:    strPtr("2014"),
			},
		},
		Experience: []models.Experience{
			{
				Title:       strPtr("Staff Engineer"),
				CompanyName: strPtr("Example Corp"),
				StartDate:   strPtr("2019"),
			},
		},
	}

	data := BuildReportData(profile)

	assert.Equal(t, "Jane Doe", data.Profile.FullName)
	assert.Equal(t, "Staff Engineer", data.Profile.Headline)
	assert.Equal(t, "jane@example.com, jd@example.com", data.Profile.Email)
	assert.Equal(t, "jane@corp.example", data.Profile.WorkEmail)
	assert.Equal(t, NA, data.Profile.Phone)
	assert.Equal(t, []string{"Go", "Kubernetes"}, data.Profile.Skills)

	assert.Equal(t, "Example Corp", data.Company.Name)
	assert.Equal(t, "2009", data.Company.FoundedAt)
	assert.Equal(t, NA, data.Company.Size)

	require.Len(t, data.Profile.Education, 1)
	assert.Equal(t, "TU Berlin", data.Profile.Education[0].SchoolName)
	assert.Equal(t, "2010 - 2014", data.Profile.Education[0].Period)
	assert.Equal(t, NA, data.Profile.Education[0].FieldOfStudy)

	require.Len(t, data.Profile.Experience, 1)
	assert.Equal(t, "2019 - N/A", data.Profile.Experience[0].Period)
	assert.Equal(t, NA, data.Profile.Experience[0].Location)
}

func TestBuildReportData_EmptyStringsDefaultLikeAbsent(t *testing.T) {
	profile := &models.Profile{
		FullName: strPtr(""),
		Email:    []string{},
	}

	data := BuildReportData(profile)

	assert.Equal(t, NA, data.Profile.FullName)
	assert.Equal(t, NA, data.Profile.Email)
}

func TestBuildReportData_PartialCompany(t *testing.T) {
	profile := &models.Profile{
		Company: &models.Company{Name: strPtr("Example Corp")},
	}

	data := BuildReportData(profile)

	assert.Equal(t, "Example Corp", data.Company.Name)
	assert.Equal(t, NA, data.Company.Domain)
	assert.Equal(t, NA, data.Company.FoundedAt)
	assert.Equal(t, NA, data.Company.Overview)
}

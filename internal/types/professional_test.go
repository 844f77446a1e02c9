//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   CertificateInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid certificate",
			input: CertificateInput{
				Title:         "AWS Solutions Architect",
				Issuer:        "Amazon Web Services",
				IssueDate:     "2024-01-15",
				CredentialURL: "https://aws.amazon.com/verification",
			},
		},
		{
			name:    "missing title",
			input:   CertificateInput{Issuer: "Coursera", IssueDate: "2024-01-15"},
			wantErr: true,
			errMsg:  "Title",
		},
		{
			name:    "missing issuer",
			input:   CertificateInput{Title: "ML", IssueDate: "2024-01-15"},
			wantErr: true,
			errMsg:  "Issuer",
		},
		{
			name: "bad credential url",
			input: CertificateInput{
				Title:         "ML",
				Issuer:        "Coursera",
				IssueDate:     "2024-01-15",
				CredentialURL: "not a url",
			},
			wantErr: true,
			errMsg:  "CredentialURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobPostingInput_Validate(t *testing.T) {
	valid := JobPostingInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Type:        JobTypeFullTime,
		Description: "Build APIs",
		Salary:      &Salary{Min: 100000, Max: 150000, Currency: "USD"},
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "freelance"
	err := badType.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")

	badSalary := valid
	badSalary.Salary = &Salary{Min: 200000, Max: 100000, Currency: "USD"}
	require.Error(t, badSalary.Validate())

	noSalary := valid
	noSalary.Salary = nil
	assert.NoError(t, noSalary.Validate())
}

func TestApplicationStatusUpdate_Validate(t *testing.T) {
	for _, s := range []ApplicationStatus{ApplicationPending, ApplicationReviewed, ApplicationInterview, ApplicationAccepted, ApplicationRejected} {
		u := ApplicationStatusUpdate{Status: s}
		assert.NoError(t, u.Validate(), s)
	}

	u := ApplicationStatusUpdate{Status: "hired"}
	assert.Error(t, u.Validate())
	u = ApplicationStatusUpdate{}
	assert.Error(t, u.Validate())
}

func TestProfileUpdate_Validate(t *testing.T) {
	good := "jane@example.com"
	bad := "jane"
	assert.NoError(t, (&ProfileUpdate{}).Validate())
	assert.NoError(t, (&ProfileUpdate{Email: &good}).Validate())
	assert.Error(t, (&ProfileUpdate{Email: &bad}).Validate())
}

func TestSkillList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SkillList
	}{
		{"array", `{"skills":["Go"," SQL ",""]}`, SkillList{"Go", "SQL"}},
		{"comma string", `{"skills":"React, TypeScript ,, Node.js"}`, SkillList{"React", "TypeScript", "Node.js"}},
		{"empty string", `{"skills":""}`, SkillList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CertificateInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.Skills)
		})
	}

	var in CertificateInput
	assert.Error(t, json.Unmarshal([]byte(`{"skills":42}`), &in))
}

func TestProfileUpdate_NilFieldsOmitted(t *testing.T) {
	var u ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Engineer","skills":"Go, Rust"}`), &u))

	require.NotNil(t, u.Title)
	assert.Equal(t, "Engineer", *u.Title)
	require.NotNil(t, u.Skills)
	assert.Equal(t, SkillList{"Go", "Rust"}, *u.Skills)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.IsAvailableForHire)
}

func TestApplyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ApplyRequest{}).Validate())
	assert.NoError(t, (&ApplyRequest{CoverLetter: "I build React apps."}).Validate())
	assert.Error(t, (&ApplyRequest{CoverLetter: strings.Repeat("a", 10001)}).Validate())
}

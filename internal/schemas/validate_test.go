package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeRecord_ConformingRecord(t *testing.T) {
	data := []byte(`{
		"Name": "Priya Sharma",
		"Mobile": "9876543210",
		"Graduation": {"Degree": "B.Tech", "Institution": "IIT Delhi"},
		"Work Experiences": [{"Company": "Acme", "Role": "Engineer", "Duration": "2020-2022"}]
	}`)

	findings, err := ValidateResumeRecord(data)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidateResumeRecord_WrongTypes(t *testing.T) {
	data := []byte(`{"Name": 42, "Work Experiences": "not a list"}`)

	findings, err := ValidateResumeRecord(data)
	require.NoError(t, err)
	require.NotEmpty(t, findings)

	fields := make([]string, 0, len(findings))
	for _, f := range findings {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "Name")
}

func TestValidateResumeRecord_MissingFieldsAreFine(t *testing.T) {
	// Every field is optional by contract; an empty object conforms.
	findings, err := ValidateResumeRecord([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidateResumeRecord_NotJSON(t *testing.T) {
	_, err := ValidateResumeRecord([]byte("not json at all"))
	assert.Error(t, err)
}

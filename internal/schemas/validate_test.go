package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeFacts_Valid(t *testing.T) {
	doc := []byte(`{
		"raw_text": "Senior engineer with Go and Python.",
		"skills": ["go", "python"],
		"experience": [
			{
				"position": "Engineer",
				"company": "Initech",
				"start_date": "2019-06",
				"end_date": "Present"
			},
			{
				"position": "Intern",
				"duration": "6 months"
			}
		]
	}`)

	assert.NoError(t, ValidateResumeFacts(doc))
}

func TestValidateResumeFacts_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeFacts([]byte(`{"raw_text": "x"}`)))
}

func TestValidateResumeFacts_MissingRawText(t *testing.T) {
	err := ValidateResumeFacts([]byte(`{"skills": ["go"]}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "raw_text")
}

func TestValidateResumeFacts_EmptyRawText(t *testing.T) {
	err := ValidateResumeFacts([]byte(`{"raw_text": ""}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeFacts_WrongSkillType(t *testing.T) {
	err := ValidateResumeFacts([]byte(`{"raw_text": "x", "skills": [1, 2]}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors[0].Field, "skills")
}

func TestValidateResumeFacts_UnknownTopLevelField(t *testing.T) {
	err := ValidateResumeFacts([]byte(`{"raw_text": "x", "certifications": []}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeFacts_MalformedJSON(t *testing.T) {
	err := ValidateResumeFacts([]byte(`{"raw_text": `))

	require.Error(t, err)
	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

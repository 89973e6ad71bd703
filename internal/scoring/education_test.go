package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEducation_MeetsRequirement(t *testing.T) {
	score := testEngine().scoreEducation(
		"Bachelor of Science in Computer Science, 2019.",
		"Bachelor's degree in a technical field required.",
	)

	assert.Equal(t, 1.0, score)
}

func TestScoreEducation_ExceedsRequirement(t *testing.T) {
	score := testEngine().scoreEducation(
		"PhD in Machine Learning.",
		"Master's degree preferred.",
	)

	assert.Equal(t, 1.0, score)
}

func TestScoreEducation_UnderRequirementPenalty(t *testing.T) {
	score := testEngine().scoreEducation(
		"Bachelor of Science in Biology.",
		"PhD preferred for this research position.",
	)

	assert.Equal(t, underEducationPenalty, score)
}

func TestScoreEducation_NoJobRequirement(t *testing.T) {
	score := testEngine().scoreEducation(
		"High school diploma.",
		"Join our fast growing team of builders.",
	)

	assert.Equal(t, 1.0, score)
}

func TestScoreEducation_NoResumeEvidence(t *testing.T) {
	score := testEngine().scoreEducation(
		"Self taught developer with many shipped projects.",
		"Bachelor's degree required.",
	)

	assert.Equal(t, noEvidenceFloor, score)
}

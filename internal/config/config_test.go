package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"resume": "resume.json",
		"job_url": "https://example.com/jobs/42",
		"api_key": "test-key",
		"embedding_model": "text-embedding-004",
		"weights": {"keyword": 0.25, "skill": 0.25, "semantic": 0.2, "experience": 0.2, "education": 0.1},
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "resume.json", cfg.Resume)
	assert.Equal(t, "https://example.com/jobs/42", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Weights)
	assert.InDelta(t, 0.25, cfg.Weights.Keyword, 0.0001)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"resume": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")
	t.Setenv("EMBEDDING_MODEL", "env-model")

	cfg := &Config{APIKey: "explicit-key"}
	cfg.FromEnv()

	// Explicit values win over the environment.
	assert.Equal(t, "explicit-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, "env-model", cfg.EmbeddingModel)
}

func TestConfigValidate_MutuallyExclusiveInputs(t *testing.T) {
	err := (&Config{Job: "job.txt", JobURL: "https://example.com"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	err = (&Config{Resume: "resume.json", ResumeID: "b2f0c2a4-0000-0000-0000-000000000001"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestConfigValidate_ResumeIDRequiresDatabase(t *testing.T) {
	err := (&Config{ResumeID: "b2f0c2a4-0000-0000-0000-000000000001"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestConfigValidate_MissingFiles(t *testing.T) {
	err := (&Config{Resume: filepath.Join(t.TempDir(), "resume.json")}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	err = (&Config{Job: filepath.Join(t.TempDir(), "job.txt")}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestConfigValidate_NegativeWeight(t *testing.T) {
	err := (&Config{Weights: &types.WeightConfig{Keyword: -0.1}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weights")
}

func TestConfigValidate_OK(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(resumePath, []byte(`{}`), 0o644))

	cfg := &Config{
		Resume:  resumePath,
		JobURL:  "https://example.com/jobs/1",
		Weights: &types.WeightConfig{Skill: 1.0},
	}
	assert.NoError(t, cfg.Validate())
}

func TestResolveWeights(t *testing.T) {
	assert.Equal(t, types.DefaultWeights(), (&Config{}).ResolveWeights())
	assert.Equal(t, types.DefaultWeights(), (&Config{Weights: &types.WeightConfig{}}).ResolveWeights())

	custom := types.WeightConfig{Keyword: 0.5, Skill: 0.5}
	assert.Equal(t, custom, (&Config{Weights: &custom}).ResolveWeights())
}

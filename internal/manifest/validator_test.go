package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `name: langchain-rag
description: Minimal LangChain RAG pipeline
version: "0.1.0"
requires: ">= 0.1.0"
variables:
  project_name: My LLM App
  project_slug: my_llm_app
  phoenix_endpoint: http://127.0.0.1:6006/v1/traces
copy_without_render:
  - "*.png"
`

func TestValidate_ValidManifest(t *testing.T) {
	result, err := Validate([]byte(validManifest))
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %+v", result.Issues)
}

func TestValidate_InvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		keyword string
	}{
		{"missing name", "version: \"0.1.0\"\n", "required"},
		{"bad name pattern", "name: My Template\nversion: \"0.1.0\"\n", "pattern"},
		{"bad version", "name: rag\nversion: latest\n", "pattern"},
		{"unknown field", "name: rag\nversion: \"0.1.0\"\nhooks: []\n", "additionalProperties"},
		{"non-string variable", "name: rag\nversion: \"0.1.0\"\nvariables:\n  retries: 3\n", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var keywords []string
			for _, issue := range result.Issues {
				keywords = append(keywords, issue.Keyword)
			}
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("name: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0644))

	result, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDeduplicateIssues(t *testing.T) {
	issues := []ValidationIssue{
		{Path: "/name", Keyword: "pattern", Message: "bad"},
		{Path: "/name", Keyword: "pattern", Message: "bad"},
		{Path: "/version", Keyword: "pattern", Message: "bad"},
	}
	assert.Len(t, deduplicateIssues(issues), 2)
}

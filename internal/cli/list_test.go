package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBuiltinTable(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "list")
	require.NoError(t, res.err)

	assert.Regexp(t, `^NAME\s+VERSION\s+DESCRIPTION\n`, res.stdout)
	assert.Regexp(t, `langchain-rag\s+0\.1\.0\s+Minimal LangChain RAG`, res.stdout)
	assert.Regexp(t, `llamaindex-qa\s+0\.1\.0\s+Minimal LlamaIndex`, res.stdout)
}

func TestListAlias(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "list-templates")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "langchain-rag")
}

func TestListJSON(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "list", "--json")
	require.NoError(t, res.err)

	var rows []listEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "langchain-rag", rows[0].Name)
	assert.Equal(t, "0.1.0", rows[0].Version)
	assert.Equal(t, "embedded:builtin/langchain-rag", rows[0].Location)
	assert.Equal(t, "llamaindex-qa", rows[1].Name)
}

func TestListOverrideDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "llamaindex-qa", "{{.project_slug}}", "app.py"), "")
	writeFile(t, filepath.Join(dir, "unrelated", "README.md"), "")

	res := runCLI(t, "", "--templates-dir", dir, "list")
	require.NoError(t, res.err)
	assert.Regexp(t, `llamaindex-qa\s+-`, res.stdout)
	assert.NotContains(t, res.stdout, "langchain-rag")
	assert.NotContains(t, res.stdout, "unrelated")
}

func TestListEmptyOverrideDir(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "--templates-dir", t.TempDir(), "list")
	require.NoError(t, res.err)
	assert.Equal(t, "No templates found.\n", res.stdout)
}

package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var choices = []string{"langchain-rag", "llamaindex-qa"}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n   \nMy RAG App\n"), &out)

	got, err := p.Ask("Project name")
	require.NoError(t, err)
	assert.Equal(t, "My RAG App", got)
	assert.Equal(t, 3, strings.Count(out.String(), "Project name: "), "blank answers re-prompt")
}

func TestAskWithoutTrailingNewline(t *testing.T) {
	p := New(strings.NewReader("Demo"), &bytes.Buffer{})
	got, err := p.Ask("Project name")
	require.NoError(t, err)
	assert.Equal(t, "Demo", got)
}

func TestAskEOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Ask("Project name")
	assert.True(t, errors.Is(err, ErrNoInput))
}

func TestSelectByNumber(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2\n"), &out)

	got, err := p.Select("Select a template", choices)
	require.NoError(t, err)
	assert.Equal(t, "llamaindex-qa", got)
	assert.Contains(t, out.String(), "  1) langchain-rag\n")
	assert.Contains(t, out.String(), "Enter number [1-2]: ")
}

func TestSelectByName(t *testing.T) {
	p := New(strings.NewReader("LangChain-RAG\n"), &bytes.Buffer{})
	got, err := p.Select("Select a template", choices)
	require.NoError(t, err)
	assert.Equal(t, "langchain-rag", got)
}

func TestSelectInvalid(t *testing.T) {
	for _, answer := range []string{"0\n", "3\n", "haystack\n"} {
		p := New(strings.NewReader(answer), &bytes.Buffer{})
		_, err := p.Select("Select a template", choices)
		require.Error(t, err, answer)
		assert.Contains(t, err.Error(), "invalid selection")
	}
}

func TestSelectEmptyList(t *testing.T) {
	p := New(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := p.Select("Select a template", nil)
	assert.Error(t, err)
}

func TestSelectThenAskShareReader(t *testing.T) {
	p := New(strings.NewReader("1\nDemo\n"), &bytes.Buffer{})

	tmpl, err := p.Select("Select a template", choices)
	require.NoError(t, err)
	name, err := p.Ask("Project name")
	require.NoError(t, err)

	assert.Equal(t, "langchain-rag", tmpl)
	assert.Equal(t, "Demo", name)
}

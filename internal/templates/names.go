package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a template from the closed set the CLI offers.
type Name string

// Known template names.
const (
	LangChainRAG Name = "langchain-rag"
	LlamaIndexQA Name = "llamaindex-qa"
)

// ErrUnknownName is returned by ParseName for names outside the known set.
var ErrUnknownName = errors.New("unknown template")

var known = []Name{LangChainRAG, LlamaIndexQA}

func (n Name) String() string { return string(n) }

// Names returns the known template names in display order.
func Names() []Name {
	out := make([]Name, len(known))
	copy(out, known)
	return out
}

// Strings returns the known template names as plain strings.
func Strings() []string {
	out := make([]string, len(known))
	for i, n := range known {
		out[i] = string(n)
	}
	return out
}

// ParseName matches s against the known names, ignoring case and
// surrounding whitespace.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	for _, n := range known {
		if strings.EqualFold(s, string(n)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w %q: choose from %s", ErrUnknownName, s, strings.Join(Strings(), ", "))
}

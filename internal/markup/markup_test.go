package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	out, err := HTML("Real-time **chess** with *Redis* pub/sub.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Real-time <strong>chess</strong> with <em>Redis</em> pub/sub.</p>", string(out))
}

func TestHTMLEscapesRawHTML(t *testing.T) {
	out, err := HTML("<script>alert(1)</script> text")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestTerminal(t *testing.T) {
	bold := func(s string) string { return "[" + s + "]" }
	italic := func(s string) string { return "_" + s + "_" }

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "plain", src: "Just text.", want: "Just text."},
		{name: "strong", src: "An **ELO rating system** here", want: "An [ELO rating system] here"},
		{name: "emphasis", src: "Uses *Redis* caching", want: "Uses _Redis_ caching"},
		{name: "soft break", src: "line one\nline two", want: "line one line two"},
		{name: "paragraphs", src: "first\n\nsecond", want: "first\n\nsecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terminal(tt.src, bold, italic))
		})
	}
}

func TestTerminalNilStylers(t *testing.T) {
	assert.Equal(t, "An ELO system", Terminal("An **ELO** system", nil, nil))
}

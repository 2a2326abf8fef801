package hyphen

import (
	"testing"

	"github.com/npillmayer/hyphtext/core/parameters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, text string, conf settings) []token {
	var toks []token
	err := eachToken(text, conf, func(tok token) error {
		toks = append(toks, tok)
		return nil
	})
	require.NoError(t, err, "tokenizing %q", text)
	return toks
}

func TestTokensPreserveWhitespace(t *testing.T) {
	toks := collectTokens(t, " Haus\t\n Hof  ", settings{whitespace: parameters.WhitespacePreserve})
	assert.Equal(t, []token{
		{text: " "}, {text: "Haus", word: true}, {text: "\t\n "},
		{text: "Hof", word: true}, {text: "  "},
	}, toks)
}

func TestTokensCollapseWhitespace(t *testing.T) {
	toks := collectTokens(t, " Haus\t\n Hof  ", settings{whitespace: parameters.WhitespaceCollapse})
	assert.Equal(t, []token{{text: "Haus", word: true}, {text: " "}, {text: "Hof", word: true}}, toks)
}

func TestTokensMinLength(t *testing.T) {
	toks := collectTokens(t, "ein Haus", settings{whitespace: parameters.WhitespacePreserve, minLength: 4})
	assert.Equal(t, []token{{text: "ein"}, {text: " "}, {text: "Haus", word: true}}, toks)
}

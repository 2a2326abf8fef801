package locale

import (
	"testing"

	"github.com/npillmayer/hyphtext/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifiers(t *testing.T) {
	ids := []struct {
		in  string
		out string
	}{
		{"de_CH", "de_CH"},
		{"de-CH", "de_CH"},
		{"DE_ch", "de_CH"},
		{"fr", "fr"},
		{"es_ES", "es_ES"},
	}
	for _, pair := range ids {
		loc, err := Parse(pair.in)
		require.NoError(t, err, "cannot parse %q", pair.in)
		assert.Equal(t, pair.out, loc.String())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Parse("!!")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestBaseAndSameLanguage(t *testing.T) {
	ch := Make("de_CH")
	assert.Equal(t, "de", ch.Base().String())
	assert.True(t, ch.SameLanguage(Make("de_AT")))
	assert.False(t, ch.SameLanguage(Make("fr_CH")))
	assert.True(t, Undefined.IsUndefined())
	assert.False(t, ch.IsUndefined())
}

func TestFallbacks(t *testing.T) {
	chain := Make("de_CH").Fallbacks()
	require.NotEmpty(t, chain)
	assert.Equal(t, "de_CH", chain[0].String())
	assert.Equal(t, "de", chain[len(chain)-1].String())
	assert.Empty(t, Undefined.Fallbacks())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "German", Make("de").Name())
}

package exceptions

import (
	"strings"
	"testing"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundWordEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	swiss := locale.Make("de_CH")
	list := New(swiss)
	list.Add("Kraft-fahr-zeug-haft-pflicht-ver-si-che-rung")
	out, err := hyphen.HyphenateText("Kraftfahrzeughaftpflichtversicherung", "-", swiss, list)
	require.NoError(t, err)
	assert.Equal(t, "Kraft-fahr-zeug-haft-pflicht-ver-si-che-rung", out)
}

func TestNoDataForLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	list := New(locale.Make("de_CH"))
	list.Add("hel-lo")
	out, err := hyphen.HyphenateText("hello world", "-", locale.Make("en_US"), list)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
	_, err = list.NextBreak("hello", 5, locale.Make("en_US"))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
}

func TestLoadCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	input := `% exceptions
\hyphenation{
  Ver-si-che-rung
  ta-ble
}`
	list, err := Load(locale.Make("de"), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	breaks, ok := list.Lookup("VERSICHERUNG")
	require.True(t, ok)
	assert.Equal(t, []int{8, 5, 3}, breaks)
	out, err := hyphen.HyphenateWord("Versicherung", hyphen.SoftHyphen, locale.Make("de_AT"), list)
	require.NoError(t, err)
	assert.Equal(t, "Ver\u00adsi\u00adche\u00adrung", out)
}

func TestLoadPlainList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	list, err := Load(locale.Make("en"), strings.NewReader("hel-lo\ncom-put-er\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	out, err := hyphen.HyphenateText("hello computer", "-", locale.Make("en_GB"), list)
	require.NoError(t, err)
	assert.Equal(t, "hel-lo com-put-er", out)
}

func TestEntries(t *testing.T) {
	list := New(locale.Make("de"))
	list.Add("Ver-si-che-rung")
	list.Add("Kraft-fahr-zeug")
	list.Add("Haus")
	assert.Equal(t, []string{"haus", "kraft-fahr-zeug", "ver-si-che-rung"}, list.Entries())
}

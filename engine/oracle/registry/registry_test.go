package registry

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/hyphtext/engine/oracle/exceptions"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exceptionList(id string, words ...string) *exceptions.List {
	list := exceptions.New(locale.Make(id))
	for _, w := range words {
		list.Add(w)
	}
	return list
}

func TestRegistryLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	reg := New()
	require.NoError(t, reg.Register(locale.Make("fr"), exceptionList("fr", "hip-po-po-tame")))
	require.NoError(t, reg.Register(locale.Make("de"), exceptionList("de", "Kraft-fahr-zeug")))
	ids := []string{}
	for _, loc := range reg.Locales() {
		ids = append(ids, loc.String())
	}
	assert.Equal(t, []string{"de", "fr"}, ids)
	//
	_, matched, err := reg.Lookup(locale.Make("de_CH"))
	require.NoError(t, err)
	assert.Equal(t, "de", matched.String())
	_, _, err = reg.Lookup(locale.Make("en_US"))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	assert.False(t, reg.IsAvailable(locale.Undefined))
	//
	err = reg.Register(locale.Undefined, exceptionList("de"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRegistryRefusesRelatedLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	reg := New()
	require.NoError(t, reg.Register(locale.Make("nb"), exceptionList("nb", "ta-bell")))
	_, _, err := reg.Lookup(locale.Make("da"))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	assert.False(t, reg.IsAvailable(locale.Make("da")))
	out, err := hyphen.HyphenateText("tabell", "-", locale.Make("da"), reg)
	require.NoError(t, err)
	assert.Equal(t, "tabell", out)
	_, matched, err := reg.Lookup(locale.Make("nb_NO"))
	require.NoError(t, err)
	assert.Equal(t, "nb", matched.String())
}

func TestRegistryAsOracle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	reg := New()
	require.NoError(t, reg.Register(locale.Make("de"),
		exceptionList("de", "Kraft-fahr-zeug-haft-pflicht-ver-si-che-rung")))
	out, err := hyphen.HyphenateText("Kraftfahrzeughaftpflichtversicherung", "-", locale.Make("de_CH"), reg)
	require.NoError(t, err)
	assert.Equal(t, "Kraft-fahr-zeug-haft-pflicht-ver-si-che-rung", out)
	out, err = hyphen.HyphenateText("hello world", "-", locale.Make("en_US"), reg)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestRegistryConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	reg := New()
	require.NoError(t, reg.Register(locale.Make("de"), exceptionList("de", "Kraft-fahr-zeug")))
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = hyphen.HyphenateText("Kraftfahrzeug", "-", locale.Make("de_CH"), reg)
		}(i)
	}
	require.NoError(t, reg.Register(locale.Make("fr"), exceptionList("fr")))
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "Kraft-fahr-zeug", r)
	}
}

const enPatterns = `\patterns{
a1n 2na.
}
`

func TestLoadDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("hyph-en-us.tex", enPatterns)
	write("hyph-en-us.hyp.txt", "ta-ble\n")
	write("hyph-de.hyp.txt", "Kraft-fahr-zeug\n")
	write("README.md", "not a pattern file")
	//
	reg := New()
	n, err := reg.LoadDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, reg.Locales(), 2)
	assert.Equal(t, "de", reg.Locales()[0].String())
	assert.Equal(t, "en_US", reg.Locales()[1].String())
	//
	out, err := hyphen.HyphenateText("banana table", "-", locale.Make("en_US"), reg)
	require.NoError(t, err)
	assert.Equal(t, "ba-nana ta-ble", out)
	out, err = hyphen.HyphenateText("Kraftfahrzeug", "-", locale.Make("de_CH"), reg)
	require.NoError(t, err)
	assert.Equal(t, "Kraft-fahr-zeug", out)
}

func TestLoadFS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"hyph-fr.hyp.txt": &fstest.MapFile{Data: []byte("hip-po-po-tame\n")},
		"hyph-fr.png":     &fstest.MapFile{Data: []byte{0x89, 0x50}},
	}
	reg := New()
	n, err := reg.LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	out, err := hyphen.HyphenateText("un hippopotame", "-", locale.Make("fr_CA"), reg)
	require.NoError(t, err)
	assert.Equal(t, "un hip-po-po-tame", out)
}

func TestLoadDirectoryMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphtext.oracle")
	defer teardown()
	//
	_, err := New().LoadDirectory(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestLocaleFromFilename(t *testing.T) {
	loc, ok := localeFromFilename("hyph-de-1996.tex", patternSuffixes)
	require.True(t, ok)
	assert.Equal(t, "de_1996", loc.String())
	_, ok = localeFromFilename("hyph-en-us.hyp.txt", patternSuffixes)
	assert.False(t, ok)
	_, ok = localeFromFilename("patterns.tex", patternSuffixes)
	assert.False(t, ok)
}

package rxkit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var testBundleFS = fstest.MapFS{
	"messages.properties": &fstest.MapFile{Data: []byte(`
# root bundle
1 = Hello
2 = Goodbye
10 = Price: ${amount}
`)},
	"messages_fr.properties": &fstest.MapFile{Data: []byte(`
1 = Bonjour
2 = Au revoir
`)},
	"messages_fr_CA.yaml": &fstest.MapFile{Data: []byte(`
1: Allo
2: Bye
`)},
	"broken.properties": &fstest.MapFile{Data: []byte(`
1 = one
2 = two
abc = oops
3 = three
`)},
	"nested.yaml": &fstest.MapFile{Data: []byte(`
1: one
2:
  - a
  - b
`)},
}

func newTestLoader(transform ValueTransform) *BundleLoader {
	return &BundleLoader{Store: &FSBundleStore{FS: testBundleFS}, Transform: transform}
}

func TestBundleLoader_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		locale language.Tag
		want   Table
	}{
		{
			name:   "root",
			locale: language.Und,
			want:   Table{1: "Hello", 2: "Goodbye", 10: "Price: ${amount}"},
		},
		{
			name:   "language",
			locale: language.French,
			want:   Table{1: "Bonjour", 2: "Au revoir"},
		},
		{
			name:   "language and region from yaml",
			locale: language.CanadianFrench,
			want:   Table{1: "Allo", 2: "Bye"},
		},
		{
			name:   "fallback to language",
			locale: language.MustParse("fr-BE"),
			want:   Table{1: "Bonjour", 2: "Au revoir"},
		},
		{
			name:   "fallback to root",
			locale: language.German,
			want:   Table{1: "Hello", 2: "Goodbye", 10: "Price: ${amount}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Table{}
			err := newTestLoader(nil).Load(ctx, "messages", tt.locale, table)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, table)
		})
	}
}

func TestBundleLoader_Transform(t *testing.T) {
	loader := newTestLoader(func(key int, value string) string {
		return strings.ToUpper(value)
	})

	table := Table{}
	err := loader.Load(context.Background(), "messages", language.French, table)
	assert.NoError(t, err)
	assert.Equal(t, Table{1: "BONJOUR", 2: "AU REVOIR"}, table)
}

func TestBundleLoader_Missing(t *testing.T) {
	table := Table{}
	err := newTestLoader(nil).Load(context.Background(), "labels", language.French, table)

	var missing *ResourceMissingError
	if assert.ErrorAs(t, err, &missing) {
		assert.Equal(t, "labels", missing.Bundle)
		assert.Equal(t, language.French, missing.Locale)
	}
	assert.Empty(t, table)
}

func TestBundleLoader_NilTable(t *testing.T) {
	var table Table
	err := newTestLoader(nil).Load(context.Background(), "messages", language.Und, table)

	var argErr *InvalidArgumentError
	if assert.ErrorAs(t, err, &argErr) {
		assert.Equal(t, "table", argErr.Name)
	}
}

func TestBundleLoader_KeyFormatKeepsEarlierEntries(t *testing.T) {
	table := Table{}
	err := newTestLoader(nil).Load(context.Background(), "broken", language.Und, table)

	var keyErr *KeyFormatError
	if assert.ErrorAs(t, err, &keyErr) {
		assert.Equal(t, "abc", keyErr.Key)
		assert.Equal(t, "broken", keyErr.Bundle)
	}

	// entries before the bad key are kept, later ones are never read
	assert.Equal(t, Table{1: "one", 2: "two"}, table)
}

func TestFSBundleStore_NonScalarValue(t *testing.T) {
	store := &FSBundleStore{FS: testBundleFS}
	_, err := store.LookupBundle(context.Background(), "nested", language.Und)
	assert.ErrorContains(t, err, "must be a scalar")
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("fr_CA")
	assert.NoError(t, err)
	assert.Equal(t, "fr-CA", tag.String())

	tag, err = ParseLocale("")
	assert.NoError(t, err)
	assert.Equal(t, language.Und, tag)

	_, err = ParseLocale("not a locale!")
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func Test_localeSuffixes(t *testing.T) {
	assert.Equal(t, []string{"fr_CA", "fr", ""}, localeSuffixes(language.CanadianFrench))
	assert.Equal(t, []string{"en", ""}, localeSuffixes(language.English))
	assert.Equal(t, []string{""}, localeSuffixes(language.Und))

	tag := language.MustParse("zh-Hant-TW")
	require.Equal(t, []string{"zh_TW", "zh", ""}, localeSuffixes(tag))
}

func TestReadBundleFile(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "labels_fr.properties")
	require.NoError(t, os.WriteFile(file, []byte("2=deux\n1=un\n"), 0644))

	entries, err := ReadBundleFile(file)
	assert.NoError(t, err)
	assert.Equal(t, []BundleEntry{{Key: "2", Value: "deux"}, {Key: "1", Value: "un"}}, entries)

	_, err = ReadBundleFile(filepath.Join(dir, "labels.json"))
	assert.ErrorContains(t, err, "unsupported bundle file type")
}

func TestLocaleSuffix(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "fr-CA", want: "fr_CA"},
		{locale: "fr_ca", want: "fr_CA"},
		{locale: "FR", want: "fr"},
		{locale: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			tag, err := ParseLocale(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, LocaleSuffix(tag))
		})
	}
}

package rxkit

import (
	"context"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Table maps the numeric keys of a bundle to their values
type Table map[int]string

type BundleEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Bundle is one resolved bundle with its entries in enumeration order
type Bundle struct {
	Name string

	// Locale is the locale suffix that matched, empty for the root bundle
	Locale string

	Entries []BundleEntry
}

// BundleStore resolves a bundle by name and locale.
// It returns *ResourceMissingError when no candidate exists.
type BundleStore interface {
	LookupBundle(ctx context.Context, name string, locale language.Tag) (*Bundle, error)
}

// ValueTransform rewrites a bundle value before it is stored
type ValueTransform func(key int, value string) string

// BundleLoader loads bundles into tables
type BundleLoader struct {
	Store BundleStore

	// Transform is applied to every value; nil stores values unchanged
	Transform ValueTransform
}

// Load resolves the bundle and stores its entries into table in enumeration order.
//
// Loading is not atomic: when a key is not a base-10 integer, *KeyFormatError is
// returned and the entries stored before that key stay in table.
func (l *BundleLoader) Load(ctx context.Context, name string, locale language.Tag, table Table) error {
	if table == nil {
		return &InvalidArgumentError{Name: "table", Reason: "must not be nil"}
	}

	bundle, err := l.Store.LookupBundle(ctx, name, locale)
	if err != nil {
		return err
	}

	log.Debugf("loading bundle %s[%s] with %d entries", bundle.Name, bundle.Locale, len(bundle.Entries))

	for _, entry := range bundle.Entries {
		key, err := strconv.Atoi(strings.TrimSpace(entry.Key))
		if err != nil {
			return &KeyFormatError{Bundle: bundle.Name, Key: entry.Key, Err: err}
		}

		value := entry.Value
		if l.Transform != nil {
			value = l.Transform(key, value)
		}

		table[key] = value
	}

	return nil
}

// ParseLocale parses a BCP 47 or java style ("fr_CA") locale.
// An empty string is the root locale.
func ParseLocale(s string) (language.Tag, error) {
	if len(s) == 0 {
		return language.Und, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, &InvalidArgumentError{Name: "locale", Reason: err.Error()}
	}

	return tag, nil
}

// LocaleSuffix returns the bundle suffix of the locale ("fr_CA", "fr"),
// empty for the root locale. Stores look bundles up by this suffix.
func LocaleSuffix(locale language.Tag) string {
	return localeSuffixes(locale)[0]
}

// localeSuffixes returns the locale suffixes to try, most specific first:
// lang_REGION, lang and the root bundle ("").
func localeSuffixes(locale language.Tag) []string {
	base, _, region := locale.Raw()

	var suffixes []string
	if lang := base.String(); lang != "und" {
		if r := region.String(); r != "ZZ" {
			suffixes = append(suffixes, lang+"_"+r)
		}

		suffixes = append(suffixes, lang)
	}

	return append(suffixes, "")
}

func candidateName(name, suffix string) string {
	if suffix == "" {
		return name
	}

	return name + "_" + suffix
}

package rxkit

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type bundleParser func(data []byte) ([]BundleEntry, error)

var bundleFileTypes = []struct {
	ext   string
	parse bundleParser
}{
	{ext: ".properties", parse: parsePropertiesBundle},
	{ext: ".yaml", parse: parseYAMLBundle},
	{ext: ".yml", parse: parseYAMLBundle},
}

// FSBundleStore reads bundles from <name>[_<locale>].properties or .yaml files
type FSBundleStore struct {
	FS fs.FS
}

func NewDirBundleStore(dir string) *FSBundleStore {
	return &FSBundleStore{FS: os.DirFS(dir)}
}

func (s *FSBundleStore) LookupBundle(ctx context.Context, name string, locale language.Tag) (*Bundle, error) {
	for _, suffix := range localeSuffixes(locale) {
		base := candidateName(name, suffix)

		for _, ft := range bundleFileTypes {
			file := path.Clean(base + ft.ext)

			data, err := fs.ReadFile(s.FS, file)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}

				return nil, errors.Wrapf(err, "unable to read bundle file %s", file)
			}

			entries, err := ft.parse(data)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to parse bundle file %s", file)
			}

			log.Debugf("found bundle file %s for %s[%s]", file, name, locale)
			return &Bundle{Name: name, Locale: suffix, Entries: entries}, nil
		}
	}

	return nil, &ResourceMissingError{Bundle: name, Locale: locale}
}

func parsePropertiesBundle(data []byte) ([]BundleEntry, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	var entries []BundleEntry
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		entries = append(entries, BundleEntry{Key: key, Value: value})
	}

	return entries, nil
}

func parseYAMLBundle(data []byte) ([]BundleEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// empty document
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: bundle must be a mapping", root.Line)
	}

	var entries []BundleEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %d: value of key %q must be a scalar", valueNode.Line, keyNode.Value)
		}

		entries = append(entries, BundleEntry{Key: keyNode.Value, Value: valueNode.Value})
	}

	return entries, nil
}

// ReadBundleFile parses a single .properties or .yaml bundle file
func ReadBundleFile(file string) ([]BundleEntry, error) {
	ext := filepath.Ext(file)
	for _, ft := range bundleFileTypes {
		if ft.ext != ext {
			continue
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		return ft.parse(data)
	}

	return nil, errors.Errorf("%s: unsupported bundle file type %q", file, ext)
}

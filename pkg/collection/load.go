package collection

import (
	"errors"
	"io"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/honohub/pkg/configerr"
)

// Load reads raw collection declarations from YAML files in fsys matching
// pattern (fs.Glob syntax). Files are read in lexical order. Each YAML
// document holds either a single collection mapping or a sequence of them:
//
//	slug: posts
//	fields:
//	  - name: title
//	    required: true
//	---
//	- slug: tags
//	- slug: authors
//
// The result is not sanitized; pass it to Sanitize.
func Load(fsys fs.FS, pattern string) ([]Collection, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, configerr.Wrap(ConstraintInvalidFile, pattern, err)
	}
	slices.Sort(files)

	var out []Collection
	for _, name := range files {
		cols, err := loadFile(fsys, name)
		if err != nil {
			return nil, configerr.Wrap(ConstraintInvalidFile, name, err)
		}
		out = append(out, cols...)
	}
	return out, nil
}

func loadFile(fsys fs.FS, name string) ([]Collection, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Collection
	dec := yaml.NewDecoder(f)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if len(doc.Content) == 0 {
			continue
		}

		root := doc.Content[0]
		switch root.Kind {
		case yaml.ScalarNode:
			if root.Tag == "!!null" {
				continue
			}
			return nil, errors.New("collection: expected mapping or sequence")
		case yaml.SequenceNode:
			var cols []Collection
			if err := root.Decode(&cols); err != nil {
				return nil, err
			}
			out = append(out, cols...)
		case yaml.MappingNode:
			var c Collection
			if err := root.Decode(&c); err != nil {
				return nil, err
			}
			out = append(out, c)
		default:
			return nil, errors.New("collection: expected mapping or sequence")
		}
	}
}

// SPDX-FileCopyrightText: 2023 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

// Package yaml wraps gopkg.in/yaml.v3. It adds the "!include" tag to
// split a document into several files and ignores top-level keys
// starting with a dot, which can be used to hold anchors.
package yaml

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unmarshal decodes the first document found within the in byte slice and
// assigns decoded values into the out value.
func Unmarshal(in []byte, out interface{}) error {
	return yaml.Unmarshal(in, out)
}

// UnmarshalWithInclude decodes the file named input from fsys into out.
// A node tagged with "!include" is replaced by the content of the file it
// names, relative to the root of fsys. A file including itself, directly
// or not, is an error.
func UnmarshalWithInclude(fsys fs.FS, input string, out interface{}) error {
	node, err := loadNode(fsys, path.Clean(input), map[string]bool{})
	if err != nil {
		return err
	}
	return node.Decode(out)
}

// loadNode loads input and its includes. loading holds the files
// currently being loaded.
func loadNode(fsys fs.FS, input string, loading map[string]bool) (*yaml.Node, error) {
	loading[input] = true
	defer delete(loading, input)

	in, err := fs.ReadFile(fsys, input)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", input, err)
	}
	var node yaml.Node
	if err := Unmarshal(in, &node); err != nil {
		return nil, fmt.Errorf("in %s: %w", input, err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.MappingNode {
		dropHiddenKeys(root)
	}

	todo := []*yaml.Node{root}
	for len(todo) > 0 {
		current := todo[0]
		todo = todo[1:]
		if current.Tag != "!include" {
			todo = append(todo, current.Content...)
			continue
		}
		if len(current.Content) > 0 {
			return nil, fmt.Errorf("at line %d of %s, no content is allowed for !include", current.Line, input)
		}
		target := path.Clean(current.Value)
		if loading[target] {
			return nil, fmt.Errorf("at line %d of %s: include cycle on %s", current.Line, input, target)
		}
		included, err := loadNode(fsys, target, loading)
		if err != nil {
			return nil, fmt.Errorf("at line %d of %s: %w", current.Line, input, err)
		}
		*current = *included
	}
	return root, nil
}

// dropHiddenKeys removes entries whose key starts with a dot from a
// mapping node.
func dropHiddenKeys(mapping *yaml.Node) {
	kept := mapping.Content[:0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if key.Kind == yaml.ScalarNode && key.Tag == "!!str" && strings.HasPrefix(key.Value, ".") {
			continue
		}
		kept = append(kept, key, mapping.Content[i+1])
	}
	mapping.Content = kept
}

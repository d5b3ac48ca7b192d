package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ozum/fs-structure/pkg/fsstructure"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// readTree decodes a tree file. Files ending in .yaml or .yml are YAML, anything else JSON.
func readTree(path string) (fsstructure.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}

	tree := fsstructure.Tree{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tree)
	default:
		err = json.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse tree file %s: %w", path, err)
	}
	return tree, nil
}

// writeTree encodes tree to w. Both encoders sort keys.
func writeTree(w io.Writer, tree fsstructure.Tree, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, want %s or %s", format, formatJSON, formatYAML)
	}
}

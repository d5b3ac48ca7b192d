package fsstructure

import (
	"fmt"
	"math"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/items"
)

type container interface {
	Path() string
	Add(items.Item)
}

// Build turns a plain tree into an item graph rooted at cwd. An empty cwd is
// the process working directory. Keys are visited in sorted order, so the
// same tree always yields the same graph.
//
// Every entry ends up below the directory holding it: {"a": {"x": 1}, "a/y": 2}
// gives a Dir "a" with children "x" and "y". Leading segments of a key that no
// Dir describes become implied directories.
func Build(tree Tree, cwd string) (*items.Root, error) {
	root, err := items.NewRoot(cwd)
	if err != nil {
		return nil, err
	}

	b := &builder{
		dirs:   make(map[string]*items.Dir),
		leaves: make(map[string]bool),
	}
	if err := b.addChildren(root, tree); err != nil {
		return nil, err
	}
	return root, nil
}

type builder struct {
	dirs   map[string]*items.Dir
	leaves map[string]bool
}

func (b *builder) addChildren(parent container, tree Tree) error {
	keys := make([]string, 0, len(tree))
	for key := range tree {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := b.add(parent, key, tree[key]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) add(parent container, key string, value any) error {
	if filepath.IsAbs(key) || path.IsAbs(key) {
		return &core.InvalidPathError{Parent: parent.Path(), Path: key}
	}

	segments := splitKey(key)
	for _, name := range segments[:len(segments)-1] {
		dir, err := b.impliedDir(parent, name)
		if err != nil {
			return err
		}
		parent = dir
	}
	name := segments[len(segments)-1]
	fullPath := filepath.Join(parent.Path(), name)

	if sub, ok := value.(Tree); ok {
		typ, tagged := sub[items.KeyType]
		switch {
		case !tagged:
			return b.describedDir(parent, name, sub)
		case typ == items.TypeDir:
			// Marker written by Flat with IncludeDirs.
			return b.describedDir(parent, name, nil)
		}
	}

	if _, isDir := b.dirs[fullPath]; isDir || b.leaves[fullPath] {
		return &core.InvalidDescriptorError{Path: fullPath, Reason: "path is described more than once"}
	}
	leaf, err := buildLeaf(parent.Path(), name, value)
	if err != nil {
		return err
	}
	b.leaves[fullPath] = true
	parent.Add(leaf)
	return nil
}

// impliedDir returns the directory at name below parent, creating an implied one if needed.
func (b *builder) impliedDir(parent container, name string) (*items.Dir, error) {
	fullPath := filepath.Join(parent.Path(), name)
	if dir, ok := b.dirs[fullPath]; ok {
		return dir, nil
	}
	if b.leaves[fullPath] {
		return nil, &core.InvalidDescriptorError{Path: fullPath, Reason: "path is described both as a file and as a directory"}
	}

	dir, err := items.NewImpliedDir(parent.Path(), name, removable(parent))
	if err != nil {
		return nil, err
	}
	b.dirs[fullPath] = dir
	parent.Add(dir)
	return dir, nil
}

// describedDir adds a directory described by tree, merging it into an existing one at the same path.
func (b *builder) describedDir(parent container, name string, tree Tree) error {
	fullPath := filepath.Join(parent.Path(), name)
	if b.leaves[fullPath] {
		return &core.InvalidDescriptorError{Path: fullPath, Reason: "path is described both as a file and as a directory"}
	}

	dir, ok := b.dirs[fullPath]
	if ok {
		if dir.Implied() {
			dir.Describe()
		}
	} else {
		var err error
		if dir, err = items.NewDir(parent.Path(), name); err != nil {
			return err
		}
		b.dirs[fullPath] = dir
		parent.Add(dir)
	}
	return b.addChildren(dir, tree)
}

func removable(c container) bool {
	dir, ok := c.(*items.Dir)
	return ok && dir.Removable()
}

// splitKey splits a slash-joined key into its segments. Keys stepping out
// with ".." stay whole.
func splitKey(key string) []string {
	if key == "" {
		return []string{key}
	}
	segments := strings.Split(path.Clean(filepath.ToSlash(key)), "/")
	for _, segment := range segments {
		if segment == ".." {
			return []string{key}
		}
	}
	return segments
}

func buildLeaf(parent, key string, value any) (items.Item, error) {
	sub, ok := value.(Tree)
	if !ok {
		content, err := stringify(filepath.Join(parent, key), value)
		if err != nil {
			return nil, err
		}
		return items.NewFile(parent, key, content)
	}
	return buildDescriptor(parent, key, sub[items.KeyType], sub)
}

func buildDescriptor(parent, key string, typ any, desc Tree) (items.Item, error) {
	path := filepath.Join(parent, key)

	switch typ {
	case items.TypeFile:
		content, err := stringify(path, desc[items.KeyData])
		if err != nil {
			return nil, err
		}
		return items.NewFile(parent, key, content)

	case items.TypeSymlink:
		target, ok := desc[items.KeyTarget].(string)
		if !ok {
			return nil, &core.InvalidDescriptorError{Path: path, Reason: "symlink target must be a string"}
		}
		var linkType string
		if raw, present := desc[items.KeyLinkType]; present && raw != nil {
			if linkType, ok = raw.(string); !ok {
				return nil, &core.InvalidDescriptorError{Path: path, Reason: "symlink type must be a string"}
			}
		}
		return items.NewSymlink(parent, key, target, linkType)

	default:
		return nil, &core.UnknownTypeError{Path: path, Type: typ}
	}
}

// stringify converts a scalar into file content. Numbers are written the
// shortest way that parses back to the same value.
func stringify(path string, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32:
		return formatFloat(float64(v), 32), nil
	case float64:
		return formatFloat(v, 64), nil
	default:
		return "", &core.UnsupportedContentError{Path: path, Value: value}
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

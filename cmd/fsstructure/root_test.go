package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const jsonTree = `{
  "README.md": "# demo",
  "count.txt": 3,
  "src": {
    "main.go": "package main",
    "link": {"$type": "Symlink", "target": "./main.go"}
  }
}`

const yamlTree = `
README.md: "# demo"
count.txt: 3
src:
  main.go: package main
  link:
    $type: Symlink
    target: ./main.go
`

func TestRootCmdSetup(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "fsstructure", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"version", "create", "remove", "load", "flat", "plan", "tempdir"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fsstructure version dev (commit: none, built: unknown)\n", out)
}

func TestCreateLoadRemove(t *testing.T) {
	for _, tc := range []struct{ name, file, content string }{
		{"json", "tree.json", jsonTree},
		{"yaml", "tree.yaml", yamlTree},
	} {
		t.Run(tc.name, func(t *testing.T) {
			treeFile := writeFile(t, filepath.Join(t.TempDir(), tc.file), tc.content)
			work := t.TempDir()

			out, err := run(t, "create", treeFile, "--cwd", work)
			require.NoError(t, err)
			assert.Contains(t, out, "Created tree in "+work)

			target, err := os.Readlink(filepath.Join(work, "src", "link"))
			require.NoError(t, err)
			assert.Equal(t, "./main.go", target)

			out, err = run(t, "load", work)
			require.NoError(t, err)
			var loaded map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &loaded))
			assert.Equal(t, map[string]interface{}{
				"README.md":   "# demo",
				"count.txt":   "3",
				"src/main.go": "package main",
				"src/link":    map[string]interface{}{"$type": "Symlink", "target": "./main.go"},
			}, loaded)

			_, err = run(t, "remove", treeFile, "--cwd", work)
			require.NoError(t, err)
			entries, err := os.ReadDir(work)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestCreateNoOverwrite(t *testing.T) {
	treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.json"), `{"a.txt": "new"}`)
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "a.txt"), "old")

	_, err := run(t, "create", treeFile, "--cwd", work, "--no-overwrite")
	assert.Error(t, err)

	data, err := os.ReadFile(filepath.Join(work, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestRemoveRmUp(t *testing.T) {
	treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.json"), `{"a/b/c.txt": "c"}`)
	work := t.TempDir()

	_, err := run(t, "create", treeFile, "--cwd", work)
	require.NoError(t, err)
	_, err = run(t, "remove", treeFile, "--cwd", work, "--rm-up", "")
	require.NoError(t, err)

	_, err = os.Lstat(filepath.Join(work, "a"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveNotEmpty(t *testing.T) {
	treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.json"), `{"dir": {"a.txt": "a"}}`)
	work := t.TempDir()

	_, err := run(t, "create", treeFile, "--cwd", work)
	require.NoError(t, err)
	writeFile(t, filepath.Join(work, "dir", "extra.txt"), "x")

	_, err = run(t, "remove", treeFile, "--cwd", work)
	assert.Error(t, err)

	_, err = run(t, "remove", treeFile, "--cwd", work, "--ignore-not-empty")
	require.NoError(t, err)
	_, err = os.Lstat(filepath.Join(work, "dir", "extra.txt"))
	assert.NoError(t, err)
}

func TestLoadJunk(t *testing.T) {
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "a.txt"), "a")
	writeFile(t, filepath.Join(work, ".DS_Store"), "junk")

	out, err := run(t, "load", work, "--format", "yaml")
	require.NoError(t, err)
	var loaded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &loaded))
	assert.Equal(t, map[string]interface{}{"a.txt": "a"}, loaded)

	out, err = run(t, "load", work, "--include-junk", "--format", "yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &loaded))
	assert.Equal(t, "junk", loaded[".DS_Store"])
}

func TestFlatCmd(t *testing.T) {
	treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.yml"), yamlTree)

	out, err := run(t, "flat", treeFile, "--include-dirs")
	require.NoError(t, err)

	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &flat))
	assert.Equal(t, map[string]interface{}{"$type": "Dir"}, flat["src"])
	assert.Equal(t, "3", flat["count.txt"])
	assert.Len(t, flat, 5)
}

func TestPlanCmd(t *testing.T) {
	treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.json"), `{"dir": {"a.txt": "abc"}}`)

	out, err := run(t, "plan", treeFile, "--cwd", "/work")
	require.NoError(t, err)
	assert.Equal(t, "  1. mkdir /work/dir\n  2. write /work/dir/a.txt (3 bytes)\nSteps: 2\n", out)

	out, err = run(t, "plan", treeFile, "--cwd", "/work", "--remove")
	require.NoError(t, err)
	assert.Equal(t, "  1. unlink /work/dir/a.txt\n  2. rmdir /work/dir\nSteps: 2\n", out)
}

func TestTempDirCmd(t *testing.T) {
	out, err := run(t, "tempdir")
	require.NoError(t, err)

	dir := strings.TrimSpace(out)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInvalidInput(t *testing.T) {
	t.Run("log level from env", func(t *testing.T) {
		t.Setenv(envLogLevel, "loud")
		_, err := run(t, "version")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(envLogLevel, "loud")
		_, err := run(t, "version", "--log-level", "debug")
		assert.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "load", t.TempDir(), "--format", "toml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("malformed tree file", func(t *testing.T) {
		treeFile := writeFile(t, filepath.Join(t.TempDir(), "tree.json"), `{"a": `)
		_, err := run(t, "flat", treeFile)
		assert.ErrorContains(t, err, "failed to parse tree file")
	})
}

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitJSONShape(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "replay.json")
	init := &ConfigInit{Command: "replay", Format: "json", Output: dest}
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	// Field names are lowerCamel, defaults filled from the kong tags.
	assert.Equal(t, map[string]any{
		"file":  "",
		"chars": false,
	}, got)
}

func TestConfigInitYAMLShape(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "tty.yaml")
	init := &ConfigInit{Command: "tty", Format: "yaml", Output: dest}
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"events": false}, got)
}

func TestConfigInitTOMLShape(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "replay.toml")
	init := &ConfigInit{Command: "replay", Format: "toml", Output: dest}
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	tree, err := toml.LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "", tree.Get("file"))
	assert.Equal(t, false, tree.Get("chars"))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	init := &ConfigInit{Command: "replay", Format: "json", Output: dest}
	assert.Error(t, init.Run())

	init.Force = true
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "chars")
}

func TestConfigInitRejectsUnknownFormat(t *testing.T) {
	init := &ConfigInit{Command: "replay", Format: "ini"}
	assert.Error(t, init.Run())
}

func TestBuildMapFromStructEmbedPrefix(t *testing.T) {
	type logOptions struct {
		Level string `default:"info"`
		File  string
	}
	type root struct {
		Chars  bool       `default:"true"`
		Log    logOptions `embed:"" prefix:"log."`
		Flat   logOptions `embed:""`
		Hidden string     `kong:"-"`
	}

	got := buildMapFromStruct(reflect.TypeOf(root{}))

	// Prefixed embeds nest under the prefix, bare embeds flatten into the
	// parent, and kong:"-" fields are dropped.
	assert.Equal(t, map[string]any{
		"chars": true,
		"log":   map[string]any{"level": "info", "file": ""},
		"level": "info",
		"file":  "",
	}, got)
	assert.NotContains(t, got, "hidden")
}

// SPDX-License-Identifier: MIT

package jobs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keebtools/zmk2md/internal/docfile"
)

const baseLayer = `
        layer_0 {
            bindings = <
&kp TAB   &kp Q &kp W &kp E &kp R &kp T   &kp Y &kp U  &kp I     &kp O   &kp P    &kp BACKSPACE
&kp LCTRL &kp A &kp S &kp D &kp F &kp G   &kp H &kp J  &kp K     &kp L   &kp SEMI &kp SQT
&kp LSHFT &kp Z &kp X &kp C &kp V &kp B   &kp N &kp M  &kp COMMA &kp DOT &kp FSLH &kp RET
                &kp LGUI &mo 1 &kp SPACE   &kp RET &mo 2 &kp RALT
            >;
        };
`

const lowerLayer = `
        layer_1 {
            bindings = <
&kp N1 &kp N2 &kp N3 &kp N4 &kp N5 &kp N6   &kp N7 &kp N8 &kp N9 &kp N0 &trans &trans
&bt BT_SEL 0 &bt BT_SEL 1 &bt BT_SEL 2 &bt BT_SEL 3 &bt BT_SEL 4 &bt BT_CLR   &kp LEFT &kp DOWN &kp UP &kp RIGHT &trans &trans
&sys_reset &bootloader &none &none &none &none   &none &none &none &none &none &none
                &trans &trans &trans   &trans &to 0 &trans
            >;
        };
`

func writeKeymap(t *testing.T, layers ...string) string {
	t.Helper()
	content := "/ {\n    keymap {\n        compatible = \"zmk,keymap\";\n" +
		strings.Join(layers, "\n") +
		"    };\n};\n"
	path := filepath.Join(t.TempDir(), "corne.keymap")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunStdout(t *testing.T) {
	keymap := writeKeymap(t, baseLayer, lowerLayer)

	var out bytes.Buffer
	status, err := Run(Config{KeymapPath: keymap}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Layers)
	assert.False(t, status.Spliced)

	doc := out.String()
	assert.Contains(t, doc, "## Keymap")
	assert.Contains(t, doc, "*Auto-generated from [`corne.keymap`](config/corne.keymap)*")
	assert.Equal(t, 2, strings.Count(doc, "### "))
	assert.Less(t, strings.Index(doc, "### layer_0"), strings.Index(doc, "### layer_1"))

	// Spot-check decoded labels end-to-end
	assert.Contains(t, doc, "│  Tab  │")
	assert.Contains(t, doc, "│   L1  │")
	assert.Contains(t, doc, "│ BT Clr│")
	assert.Contains(t, doc, "│  TO0  │")
	assert.Contains(t, doc, "│   ✕   │")
	// The top border starts one line per diagram; counting the substring
	// alone would also match the right-hand half after the hand gap.
	assert.Equal(t, 2, strings.Count(doc, "\n┌───────┬"))
}

func TestRunStdoutNoLayers(t *testing.T) {
	keymap := writeKeymap(t) // no layer blocks at all

	var out bytes.Buffer
	status, err := Run(Config{KeymapPath: keymap}, &out)
	require.NoError(t, err, "an empty keymap is not an error")
	assert.Equal(t, 0, status.Layers)
	assert.Contains(t, out.String(), "## Keymap")
	assert.NotContains(t, out.String(), "### ")
}

func TestRunSplice(t *testing.T) {
	keymap := writeKeymap(t, baseLayer)
	readme := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(readme, []byte(
		"# Board\n"+docfile.StartMarker+"\nold\n"+docfile.EndMarker+"\n"), 0o644))

	var out bytes.Buffer
	status, err := Run(Config{KeymapPath: keymap, ReadmePath: readme}, &out)
	require.NoError(t, err)
	assert.True(t, status.Spliced)
	assert.Empty(t, out.String(), "splice mode must not print the document")

	got, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Contains(t, string(got), "### layer_0")
	assert.NotContains(t, string(got), "\nold\n")
	assert.Contains(t, string(got), docfile.StartMarker)
	assert.Contains(t, string(got), docfile.EndMarker)
}

func TestRunSpliceMissingMarkers(t *testing.T) {
	keymap := writeKeymap(t, baseLayer)
	readme := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Board, no markers\n"), 0o644))

	status, err := Run(Config{KeymapPath: keymap, ReadmePath: readme}, os.Stdout)
	require.NoError(t, err, "missing markers are a warning, not a failure")
	assert.False(t, status.Spliced)

	got, readErr := os.ReadFile(readme)
	require.NoError(t, readErr)
	assert.Equal(t, "# Board, no markers\n", string(got))
}

func TestRunSpliceMissingReadme(t *testing.T) {
	keymap := writeKeymap(t, baseLayer)
	readme := filepath.Join(t.TempDir(), "README.md")

	status, err := Run(Config{KeymapPath: keymap, ReadmePath: readme}, os.Stdout)
	require.NoError(t, err)
	assert.False(t, status.Spliced)
	_, statErr := os.Stat(readme)
	assert.Error(t, statErr, "destination must not be created")
}

func TestRunMissingKeymap(t *testing.T) {
	_, err := Run(Config{KeymapPath: filepath.Join(t.TempDir(), "absent.keymap")}, os.Stdout)
	require.Error(t, err)
}

func TestRunLabelOverrides(t *testing.T) {
	keymap := writeKeymap(t, baseLayer)

	var out bytes.Buffer
	_, err := Run(Config{
		KeymapPath: keymap,
		Labels:     map[string]string{"kp TAB": "⇥"},
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "│   ⇥   │")
	assert.NotContains(t, out.String(), "│  Tab  │")
}

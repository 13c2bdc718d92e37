// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Legend explains the symbols used in rendered diagrams.
const Legend = "**Legend:** `▽` = Transparent (uses key from lower layer), `L#` = Momentary layer switch"

// Document assembles the full markdown: heading, attribution naming the
// source keymap, legend, then one diagram per layer in the given order.
// With no layers the document still carries the heading and legend. The
// result ends with a newline.
func Document(sourcePath string, layers []Layer) string {
	base := filepath.Base(sourcePath)

	out := []string{
		"## Keymap",
		"",
		fmt.Sprintf("*Auto-generated from [`%s`](config/%s)*", base, base),
		"",
		Legend,
		"",
	}
	for _, layer := range layers {
		out = append(out, Diagram(layer.Name, layer.Labels), "")
	}
	return strings.Join(out, "\n")
}

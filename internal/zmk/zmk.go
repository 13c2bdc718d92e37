// SPDX-License-Identifier: MIT

// Package zmk extracts layer definitions from ZMK keymap files.
//
// The keymap format is devicetree syntax, but only a narrow slice of it is
// needed here: numbered layer nodes carrying a bindings cell array. The
// extraction is deliberately pattern-based rather than a grammar parser;
// blocks with malformed brace nesting may be missed or mis-captured, which
// is accepted best-effort behavior.
package zmk

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MinBindings is the smallest binding count accepted as a full physical
// layer. Candidate blocks below it (macros, helper nodes) are discarded.
const MinBindings = 36

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// layerBlock matches a numbered layer node followed by its bindings
	// cell array. The [^{}] class keeps the bindings search inside the
	// same brace-delimited block.
	layerBlock = regexp.MustCompile(`(Layer_\d+|layer_\d+)\s*\{[^{}]*?bindings\s*=\s*<\s*([^>]+)\s*>`)

	digitRun = regexp.MustCompile(`\d+`)
)

// Layer is a named, ordered sequence of raw binding tokens.
type Layer struct {
	Name     string
	Bindings []string
}

// Number returns the integer embedded in the layer identifier (first run
// of digits). Identifiers without digits sort first.
func (l Layer) Number() int {
	m := digitRun.FindString(l.Name)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// Parse scans raw keymap text and returns all full layers, sorted ascending
// by layer number. A repeated layer name keeps the last definition. No
// matching blocks yields an empty result, not an error.
func Parse(content string) []Layer {
	stripped := lineComment.ReplaceAllString(content, "")
	stripped = blockComment.ReplaceAllString(stripped, "")

	byName := make(map[string][]string)
	var order []string
	for _, m := range layerBlock.FindAllStringSubmatch(stripped, -1) {
		name := m[1]
		bindings := SplitBindings(m[2])
		if len(bindings) < MinBindings {
			continue
		}
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = bindings
	}

	layers := make([]Layer, 0, len(order))
	for _, name := range order {
		layers = append(layers, Layer{Name: name, Bindings: byName[name]})
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Number() < layers[j].Number()
	})
	return layers
}

// SplitBindings splits the raw text of a bindings cell array into tokens.
// Newlines collapse to spaces and a new token starts at every '&', so each
// token keeps its leading '&'. Empty fragments are dropped.
func SplitBindings(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", " ")

	var out []string
	flush := func(seg string) {
		if tok := strings.TrimSpace(seg); tok != "" {
			out = append(out, tok)
		}
	}
	prev := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '&' && i > 0 {
			flush(raw[prev:i])
			prev = i
		}
	}
	flush(raw[prev:])
	return out
}

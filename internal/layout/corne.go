// SPDX-License-Identifier: MIT

// Package layout renders decoded layers as fixed-geometry keyboard diagrams
// and assembles them into a markdown document.
package layout

import (
	"strings"
)

// KeyCount is the number of physical keys on the Corne: 3 rows of 6 per
// hand plus 3 thumb keys per hand.
const KeyCount = 42

// cellWidth is the fixed column width each label is centered in. Labels
// wider than this break the grid alignment; that is accepted, the decoder
// keeps labels short for every known binding.
const cellWidth = 7

// Divider lines of the split diagram. The geometry is part of the output
// contract and must not change shape.
const (
	borderTop    = "┌───────┬───────┬───────┬───────┬───────┬───────┐       ┌───────┬───────┬───────┬───────┬───────┬───────┐"
	borderMid    = "├───────┼───────┼───────┼───────┼───────┼───────┤       ├───────┼───────┼───────┼───────┼───────┼───────┤"
	borderBottom = "└───────┴───────┴───────┼───────┼───────┼───────┤       ├───────┼───────┼───────┼───────┴───────┴───────┘"
	thumbBottom  = "                        └───────┴───────┴───────┘       └───────┴───────┴───────┘"
	thumbIndent  = "                        "
	handGap      = "       "
)

// Layer pairs a layer name with its decoded display labels in key order.
type Layer struct {
	Name   string
	Labels []string
}

// Diagram renders one layer as a markdown section: a heading naming the
// layer and a fenced code block holding the split-keyboard diagram. Short
// layers are padded with blank keys to 42 slots; extra labels are ignored.
func Diagram(name string, labels []string) string {
	keys := make([]string, KeyCount)
	copy(keys, labels)

	var b strings.Builder
	b.WriteString("### " + name + "\n")
	b.WriteString("```\n")
	b.WriteString(borderTop + "\n")
	b.WriteString(handRow(keys[0:6], keys[6:12]) + "\n")
	b.WriteString(borderMid + "\n")
	b.WriteString(handRow(keys[12:18], keys[18:24]) + "\n")
	b.WriteString(borderMid + "\n")
	b.WriteString(handRow(keys[24:30], keys[30:36]) + "\n")
	b.WriteString(borderBottom + "\n")
	b.WriteString(thumbIndent + handRow(keys[36:39], keys[39:42]) + "\n")
	b.WriteString(thumbBottom + "\n")
	b.WriteString("```")
	return b.String()
}

func handRow(left, right []string) string {
	return "│" + joinCells(left) + "│" + handGap + "│" + joinCells(right) + "│"
}

func joinCells(labels []string) string {
	cells := make([]string, len(labels))
	for i, label := range labels {
		cells[i] = center(label, cellWidth)
	}
	return strings.Join(cells, "│")
}

// center pads a label to width columns, counting runes. When the padding is
// odd the extra column goes on the left, matching the reference diagrams.
// Labels already at or past the width are returned unchanged.
func center(s string, width int) string {
	marg := width - len([]rune(s))
	if marg <= 0 {
		return s
	}
	left := marg/2 + marg%2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}

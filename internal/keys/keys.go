// SPDX-License-Identifier: MIT

// Package keys maps raw ZMK binding tokens to short display labels.
package keys

import (
	"strings"
	"unicode"
)

// display is the fixed lookup table for known bindings, keyed by the token
// after the leading '&' is stripped. Carried over verbatim from the
// reference keymap generator; downstream diagrams depend on these exact
// labels.
var display = map[string]string{
	// Letters
	"kp A": "A", "kp B": "B", "kp C": "C", "kp D": "D", "kp E": "E",
	"kp F": "F", "kp G": "G", "kp H": "H", "kp I": "I", "kp J": "J",
	"kp K": "K", "kp L": "L", "kp M": "M", "kp N": "N", "kp O": "O",
	"kp P": "P", "kp Q": "Q", "kp R": "R", "kp S": "S", "kp T": "T",
	"kp U": "U", "kp V": "V", "kp W": "W", "kp X": "X", "kp Y": "Y",
	"kp Z": "Z",
	// Numbers
	"kp N0": "0", "kp N1": "1", "kp N2": "2", "kp N3": "3", "kp N4": "4",
	"kp N5": "5", "kp N6": "6", "kp N7": "7", "kp N8": "8", "kp N9": "9",
	// Modifiers
	"kp TAB": "Tab", "kp ESCAPE": "Esc", "kp ESC": "Esc",
	"kp LEFT_CONTROL": "Ctrl", "kp LCTRL": "Ctrl", "kp RIGHT_CONTROL": "Ctrl",
	"kp LEFT_SHIFT": "Shift", "kp LSHFT": "Shift", "kp RIGHT_SHIFT": "Shift",
	"kp LEFT_ALT": "Alt", "kp LALT": "Alt", "kp RIGHT_ALT": "AltGr",
	"kp LGUI": "GUI", "kp RGUI": "GUI",
	"kp SPACE": "Space", "kp BACKSPACE": "Bksp", "kp RET": "Enter", "kp ENTER": "Enter",
	// Punctuation
	"kp SEMICOLON": ";", "kp SEMI": ";", "kp SQT": "'", "kp APOS": "'",
	"kp COMMA": ",", "kp DOT": ".", "kp FSLH": "/", "kp SLASH": "/",
	"kp BSLH": `\`, "kp BACKSLASH": `\`,
	"kp LBKT": "[", "kp RBKT": "]", "kp LBRC": "{", "kp RBRC": "}",
	"kp LPAR": "(", "kp RPAR": ")",
	"kp MINUS": "-", "kp EQUAL": "=", "kp PLUS": "+", "kp UNDER": "_",
	"kp GRAVE": "`", "kp TILDE": "~",
	"kp EXCL": "!", "kp AT": "@", "kp HASH": "#", "kp DLLR": "$",
	"kp PRCNT": "%", "kp CARET": "^", "kp AMPS": "&", "kp ASTRK": "*",
	"kp PIPE": "|",
	// Navigation
	"kp LEFT": "←", "kp RIGHT": "→", "kp UP": "↑", "kp DOWN": "↓",
	"kp HOME": "Home", "kp END": "End", "kp PG_UP": "PgUp", "kp PG_DN": "PgDn",
	// Bluetooth
	"bt BT_CLR": "BT Clr", "bt BT_SEL 0": "BT 0", "bt BT_SEL 1": "BT 1",
	"bt BT_SEL 2": "BT 2", "bt BT_SEL 3": "BT 3", "bt BT_SEL 4": "BT 4",
	// System
	"sys_reset": "Reset", "bootloader": "Boot",
	// Transparent/None
	"trans": "▽", "none": "✕",
}

// Decoder turns raw binding tokens into display labels. The zero value uses
// only the built-in table; overrides from user configuration take precedence
// over every built-in rule.
type Decoder struct {
	overrides map[string]string
}

// NewDecoder returns a decoder with the given user label overrides, keyed by
// the '&'-stripped binding token.
func NewDecoder(overrides map[string]string) *Decoder {
	return &Decoder{overrides: overrides}
}

// Decode maps one raw binding token to its display label. Rules apply in
// order, first match wins:
//
//  1. user override (exact token match)
//  2. mo/to/lt layer bindings (the lt key-code argument is dropped from the
//     label, a preserved quirk of the reference generator)
//  3. the fixed display table (exact token match)
//  4. unknown "kp X" keycodes, capitalized
//  5. first 6 runes of the token
//
// Decoding never fails; unrecognized tokens degrade to the truncation rule.
func (d *Decoder) Decode(binding string) string {
	binding = strings.TrimSpace(binding)
	binding = strings.TrimPrefix(binding, "&")

	if label, ok := d.overrides[binding]; ok {
		return label
	}

	if strings.HasPrefix(binding, "mo ") {
		return "L" + strings.Fields(binding)[1]
	}
	if strings.HasPrefix(binding, "to ") {
		return "TO" + strings.Fields(binding)[1]
	}
	if strings.HasPrefix(binding, "lt ") {
		return "LT" + strings.Fields(binding)[1]
	}

	if label, ok := display[binding]; ok {
		return label
	}

	if strings.HasPrefix(binding, "kp ") {
		return capitalize(binding[3:])
	}

	runes := []rune(binding)
	if len(runes) > 6 {
		runes = runes[:6]
	}
	return string(runes)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

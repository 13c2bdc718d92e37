// SPDX-License-Identifier: MIT

package keys

import (
	"testing"
)

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		binding string
		want    string
	}{
		// Letters and digits
		{"&kp A", "A"},
		{"kp Z", "Z"},
		{"&kp N0", "0"},
		{"&kp N9", "9"},
		// Layer bindings
		{"&mo 3", "L3"},
		{"&to 0", "TO0"},
		{"&lt 2 SPACE", "LT2"},
		// Modifiers and whitespace keys
		{"&kp TAB", "Tab"},
		{"&kp ESC", "Esc"},
		{"&kp LEFT_SHIFT", "Shift"},
		{"&kp RIGHT_ALT", "AltGr"},
		{"&kp LGUI", "GUI"},
		{"&kp SPACE", "Space"},
		{"&kp BACKSPACE", "Bksp"},
		{"&kp RET", "Enter"},
		// Punctuation
		{"&kp SEMI", ";"},
		{"&kp SQT", "'"},
		{"&kp BSLH", `\`},
		{"&kp GRAVE", "`"},
		{"&kp AMPS", "&"},
		// Navigation
		{"&kp LEFT", "←"},
		{"&kp UP", "↑"},
		{"&kp PG_DN", "PgDn"},
		// Bluetooth and system
		{"&bt BT_SEL 2", "BT 2"},
		{"&bt BT_CLR", "BT Clr"},
		{"&sys_reset", "Reset"},
		{"&bootloader", "Boot"},
		// Placeholders
		{"&trans", "▽"},
		{"&none", "✕"},
		// Unknown kp keycodes are capitalized
		{"&kp FOO", "Foo"},
		{"&kp C_VOL_UP", "C_vol_up"},
		// Unknown binding types fall back to 6-rune truncation
		{"&customaction123", "custom"},
		{"&td0", "td0"},
		// Whitespace is trimmed first
		{"  &kp A  ", "A"},
	}
	d := NewDecoder(nil)
	for _, tc := range tests {
		if got := d.Decode(tc.binding); got != tc.want {
			t.Errorf("Decode(%q): expected %q, got %q", tc.binding, tc.want, got)
		}
	}
}

func TestDecodeOverrides(t *testing.T) {
	d := NewDecoder(map[string]string{
		"kp A":        "→A←",
		"trans":       "...",
		"macro_email": "Email",
	})

	// Overrides beat the built-in table, the placeholder symbols and the
	// truncation fallback; non-overridden bindings are unaffected.
	tests := []struct {
		binding string
		want    string
	}{
		{"&kp A", "→A←"},
		{"&trans", "..."},
		{"&macro_email", "Email"},
		{"&kp B", "B"},
	}
	for _, tc := range tests {
		if got := d.Decode(tc.binding); got != tc.want {
			t.Errorf("Decode(%q): expected %q, got %q", tc.binding, tc.want, got)
		}
	}
}

func TestDecodeFullTableRoundTrip(t *testing.T) {
	// Every table entry must decode to its documented literal label.
	d := NewDecoder(nil)
	for binding, want := range display {
		if got := d.Decode("&" + binding); got != want {
			t.Errorf("Decode(&%s): expected %q, got %q", binding, want, got)
		}
	}
}

package emote_test

import (
	"testing"

	"parley/internal/emote"
)

func TestExpand(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"#shrug", `¯\_(ツ)_/¯`},
		{"well #shrug then", `well ¯\_(ツ)_/¯ then`},
		{"#tableflip", "(╯°□°)╯︵"},
		{"#notashortcut", "#notashortcut"},
		{"#shrug #lenny", `¯\_(ツ)_/¯ ( ͡° ͜ʖ ͡°)`},
		{"#fish", "ӽe̲̅v̲̅o̲̅l̲̅u̲̅t̲̅i̲̅o̲̅ɳ̲̅ᕗ"},
		{"#kick", "＼| ￣ヘ￣|／＿＿＿＿＿＿＿θ☆( *o*)/"},
		// "$100" must win over its "$10" and "$1" prefixes.
		{"#$100", "[̲̅$̲̅(̲̅ιοο̲̅)̲̅$̲̅"},
		{"#$1", "[̲̅$̲̅(̲̅1̲̅)̲̅$̲̅"},
	}
	for _, c := range cases {
		if got := emote.Expand(c.in); got != c.want {
			t.Fatalf("Expand(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Package emote expands #shortcut emoticons in outgoing message text.
package emote

import "strings"

// Longer shortcuts come before their prefixes ("tableflip" before "table")
// so the replacer matches them first.
var shortcuts = []string{
	"tableflip", "(╯°□°)╯︵",
	"table", "(╯°□°)╯︵ ",
	"flip", "(╯°□°)╯︵",
	"unflip", "┳━┳ ヽ(ಠل͜ಠ)ﾉ",
	"shrug", `¯\_(ツ)_/¯`,
	"lenny", "( ͡° ͜ʖ ͡°)",
	"uwu", "ヾ(●ω●)ノ",
	"happy", "😂",
	"sad", "😢",
	"angry", "😠",
	"sick", "😷",
	"dance", "💃",
	"wave", "( ͡❛ ͜ʖ ͡❛)✊",
	"disapproval", "ಠ_ಠ",
	"bat", "◥▅◤",
	"kiss", "(๑ˇεˇ๑)",
	"flowergirl", "(◕‿◕✿)",
	"crying", "( ༎ຶ ۝ ༎ຶ )",
	"cat", "(=ʘᆽʘ=)∫",
	"bear", "ʕ •ᴥ•ʔ",
	"shootingstar", "☆彡",
	"fish", "ӽe̲̅v̲̅o̲̅l̲̅u̲̅t̲̅i̲̅o̲̅ɳ̲̅ᕗ",
	"$100", "[̲̅$̲̅(̲̅ιοο̲̅)̲̅$̲̅",
	"$10", " [̲̅$̲̅(̲̅1̲̅0̲̅)̲̅$̲̅",
	"$5", "[̲̅$̲̅(̲̅5̲̅)̲̅$̲̅",
	"$1", "[̲̅$̲̅(̲̅1̲̅)̲̅$̲̅",
	"kick", "＼| ￣ヘ￣|／＿＿＿＿＿＿＿θ☆( *o*)/",
}

var replacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(shortcuts))
	for i := 0; i < len(shortcuts); i += 2 {
		pairs = append(pairs, "#"+shortcuts[i], shortcuts[i+1])
	}
	return strings.NewReplacer(pairs...)
}()

// Expand replaces every #shortcut occurrence in text with its emoticon.
// Unknown shortcuts pass through untouched.
func Expand(text string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	return replacer.Replace(text)
}

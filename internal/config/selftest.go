package config

import "fmt"

// SelfTestFixture returns a small, well-formed escape sequence exercising
// SGR, cursor movement, and an OSC title — used by `vtparse init` to smoke
// test a freshly written config against a real Parser/Screen pair before
// declaring success.
func SelfTestFixture() []byte {
	return []byte(fmt.Sprintf("\x1b]0;vtparse\x07\x1b[1;36mvtparse\x1b[0m ready\x1b[H"))
}

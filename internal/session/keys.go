package session

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyByName = map[string]Key{
	"escape":    KeyEscape,
	"enter":     rl.KeyEnter,
	"space":     rl.KeySpace,
	"tab":       rl.KeyTab,
	"backspace": rl.KeyBackspace,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"lshift":    rl.KeyLeftShift,
	"lctrl":     rl.KeyLeftControl,
	"f1":        rl.KeyF1,
	"f2":        rl.KeyF2,
	"f3":        rl.KeyF3,
	"f12":       rl.KeyF12,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyByName[string(c)] = Key(rl.KeyA + (c - 'a'))
	}
	for c := '0'; c <= '9'; c++ {
		keyByName[string(c)] = Key(rl.KeyZero + (c - '0'))
	}
}

// ParseKey resolves a case-insensitive key name such as "escape" or "w".
func ParseKey(name string) (Key, error) {
	k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyNull, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// KeyNames returns every accepted key name, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyByName))
	for n := range keyByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

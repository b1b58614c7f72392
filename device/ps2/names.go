package ps2

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyName maps hardware key codes with a PS/2 mapping to human-readable key names.
var KeyName = map[uint8]string{
	// Digits are prefixed so they never collide with numeric key codes.
	Key1: "Digit1", Key2: "Digit2", Key3: "Digit3", Key4: "Digit4", Key5: "Digit5",
	Key6: "Digit6", Key7: "Digit7", Key8: "Digit8", Key9: "Digit9", Key0: "Digit0",

	KeyW: "W", KeyA: "A", KeyS: "S", KeyD: "D",

	// Arrow keys
	KeyUp:    "Up",
	KeyLeft:  "Left",
	KeyRight: "Right",
	KeyDown:  "Down",
}

// ParseKeycode resolves a decimal number, a 0x-prefixed hex number or a
// KeyName (case-insensitive) to a hardware key code.
// Leading zeros are decimal: "010" is 10. Octal, binary and underscore
// forms are rejected. Numbers are range checked against the scancode table.
func ParseKeycode(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty keycode")
	}
	if n, err := parseNumber(s); err == nil {
		if n < 0 || n >= TableSize {
			return 0, fmt.Errorf("%w: %s", ErrKeycodeRange, s)
		}
		return int(n), nil
	}
	for code, name := range KeyName {
		if strings.EqualFold(name, s) {
			return int(code), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

func parseNumber(s string) (int64, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return strconv.ParseInt(s[2:], 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

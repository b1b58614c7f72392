// Package ps2 translates GTK hardware key codes into PS/2 (scan code set 2)
// make and break byte sequences.
package ps2

import (
	"errors"
	"fmt"
)

// ErrKeycodeRange is returned for key codes outside [0, TableSize).
var ErrKeycodeRange = errors.New("keycode out of range")

// Kind tells which shape a Scancode has.
type Kind uint8

const (
	Absent   Kind = iota // no PS/2 equivalent
	Simple               // single base byte
	Extended             // PrefixExtended followed by the base byte
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Simple:
		return "simple"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Scancode is one table entry. The zero value is Absent.
type Scancode struct {
	kind Kind
	code uint8
}

// SimpleCode returns a one-byte scan code entry.
func SimpleCode(code uint8) Scancode { return Scancode{kind: Simple, code: code} }

// ExtendedCode returns an E0-prefixed scan code entry.
func ExtendedCode(code uint8) Scancode { return Scancode{kind: Extended, code: code} }

// Kind reports the entry shape.
func (s Scancode) Kind() Kind { return s.kind }

// Code returns the base scan code byte. It is 0 for Absent entries.
func (s Scancode) Code() uint8 { return s.code }

// IsAbsent reports whether the entry has no PS/2 mapping.
func (s Scancode) IsAbsent() bool { return s.kind == Absent }

// Make returns the press sequence, or nil for Absent entries.
func (s Scancode) Make() []byte {
	switch s.kind {
	case Absent:
		return nil
	case Simple:
		return []byte{s.code}
	case Extended:
		return []byte{PrefixExtended, s.code}
	}
	panic(fmt.Sprintf("ps2: invalid scancode kind %d", s.kind))
}

// Break returns the release sequence, or nil for Absent entries.
//
//	Simple:   F0 code
//	Extended: E0 F0 code
func (s Scancode) Break() []byte {
	switch s.kind {
	case Absent:
		return nil
	case Simple:
		return []byte{PrefixBreak, s.code}
	case Extended:
		return []byte{PrefixExtended, PrefixBreak, s.code}
	}
	panic(fmt.Sprintf("ps2: invalid scancode kind %d", s.kind))
}

func (s Scancode) String() string {
	switch s.kind {
	case Simple:
		return fmt.Sprintf("%02x", s.code)
	case Extended:
		return fmt.Sprintf("%02x %02x", PrefixExtended, s.code)
	default:
		return "-"
	}
}

// Lookup returns the table entry for keycode.
func Lookup(keycode int) (Scancode, error) {
	if keycode < 0 || keycode >= TableSize {
		return Scancode{}, fmt.Errorf("%w: %d", ErrKeycodeRange, keycode)
	}
	return table[keycode], nil
}

// BreakCode returns the PS/2 break sequence for a hardware key code.
// A nil slice with a nil error means the key has no PS/2 equivalent.
func BreakCode(keycode int) ([]byte, error) {
	sc, err := Lookup(keycode)
	if err != nil {
		return nil, err
	}
	return sc.Break(), nil
}

// MakeCode returns the PS/2 make sequence for a hardware key code.
// A nil slice with a nil error means the key has no PS/2 equivalent.
func MakeCode(keycode int) ([]byte, error) {
	sc, err := Lookup(keycode)
	if err != nil {
		return nil, err
	}
	return sc.Make(), nil
}

// Stroke returns make followed by break, i.e. one full key press.
func Stroke(keycode int) ([]byte, error) {
	sc, err := Lookup(keycode)
	if err != nil {
		return nil, err
	}
	if sc.IsAbsent() {
		return nil, nil
	}
	return append(sc.Make(), sc.Break()...), nil
}

// Mapped returns the key codes that have a PS/2 mapping, in ascending order.
func Mapped() []uint8 {
	var out []uint8
	for i, sc := range table {
		if !sc.IsAbsent() {
			out = append(out, uint8(i))
		}
	}
	return out
}

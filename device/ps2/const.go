package ps2

// Set 2 prefix bytes
const (
	PrefixExtended = 0xE0 // precedes the base code of an extended key
	PrefixBreak    = 0xF0 // marks a key release
)

// TableSize is the number of hardware key codes covered by the scancode table.
const TableSize = 256

// GTK hardware key codes (X11 key codes, evdev code + 8) with a PS/2 mapping.
const (
	Key1 = 0x0A
	Key2 = 0x0B
	Key3 = 0x0C
	Key4 = 0x0D
	Key5 = 0x0E
	Key6 = 0x0F

	Key7 = 0x10
	Key8 = 0x11
	Key9 = 0x12
	Key0 = 0x13

	KeyW = 0x19

	KeyA = 0x26
	KeyS = 0x27
	KeyD = 0x28

	// Arrow keys
	KeyUp    = 0x6F
	KeyLeft  = 0x71
	KeyRight = 0x72
	KeyDown  = 0x74
)

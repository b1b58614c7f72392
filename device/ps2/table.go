package ps2

// table maps GTK hardware key codes to PS/2 set 2 scan codes.
// Unlisted indices are Absent. Never written after initialization.
var table = [TableSize]Scancode{
	// 0x0x
	Key1: SimpleCode(0x16),
	Key2: SimpleCode(0x1e),
	Key3: SimpleCode(0x26),
	Key4: SimpleCode(0x25),
	Key5: SimpleCode(0x2e),
	Key6: SimpleCode(0x36),

	// 0x1x
	Key7: SimpleCode(0x3d),
	Key8: SimpleCode(0x3e),
	Key9: SimpleCode(0x46),
	Key0: SimpleCode(0x45),
	KeyW: SimpleCode(0x1d),

	// 0x2x
	KeyA: SimpleCode(0x1c),
	KeyS: SimpleCode(0x1b),
	KeyD: SimpleCode(0x23),

	// 0x6x
	KeyUp: ExtendedCode(0x75),

	// 0x7x
	KeyLeft:  ExtendedCode(0x6b),
	KeyRight: ExtendedCode(0x74),
	KeyDown:  ExtendedCode(0x72),
}

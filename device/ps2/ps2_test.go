package ps2_test

import (
	"testing"

	"github.com/dps-sim/ps2scan/device/ps2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakCode(t *testing.T) {
	type testCase struct {
		name     string
		keycode  int
		expected []byte
	}

	cases := []testCase{
		{name: "digit 1", keycode: 0x0A, expected: []byte{0xF0, 0x16}},
		{name: "digit 0", keycode: 0x13, expected: []byte{0xF0, 0x45}},
		{name: "W", keycode: 0x19, expected: []byte{0xF0, 0x1D}},
		{name: "D", keycode: 0x28, expected: []byte{0xF0, 0x23}},
		{name: "up, last of row 0x6x", keycode: 0x6F, expected: []byte{0xE0, 0xF0, 0x75}},
		{name: "left", keycode: 0x71, expected: []byte{0xE0, 0xF0, 0x6B}},
		{name: "right", keycode: 0x72, expected: []byte{0xE0, 0xF0, 0x74}},
		{name: "down", keycode: 0x74, expected: []byte{0xE0, 0xF0, 0x72}},
		{name: "absent", keycode: 0x04, expected: nil},
		{name: "lower bound", keycode: 0, expected: nil},
		{name: "upper bound", keycode: 255, expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ps2.BreakCode(tc.keycode)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestBreakCodeOutOfRange(t *testing.T) {
	for _, k := range []int{-1, 256, 1 << 20} {
		got, err := ps2.BreakCode(k)
		assert.ErrorIs(t, err, ps2.ErrKeycodeRange, "keycode %d", k)
		assert.Nil(t, got)
	}
}

func TestBreakCodeShape(t *testing.T) {
	for k := 0; k < ps2.TableSize; k++ {
		sc, err := ps2.Lookup(k)
		require.NoError(t, err)

		got, err := ps2.BreakCode(k)
		require.NoError(t, err)

		switch sc.Kind() {
		case ps2.Absent:
			assert.Nil(t, got, "keycode %#x", k)
		case ps2.Simple:
			assert.Equal(t, []byte{0xF0, sc.Code()}, got, "keycode %#x", k)
		case ps2.Extended:
			assert.Equal(t, []byte{0xE0, 0xF0, sc.Code()}, got, "keycode %#x", k)
		default:
			t.Fatalf("keycode %#x: unexpected kind %v", k, sc.Kind())
		}

		again, _ := ps2.BreakCode(k)
		assert.Equal(t, got, again, "keycode %#x", k)
	}
}

func TestBreakCodeReturnsCopy(t *testing.T) {
	got, err := ps2.BreakCode(ps2.KeyUp)
	require.NoError(t, err)
	got[2] = 0x00

	again, err := ps2.BreakCode(ps2.KeyUp)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0xF0, 0x75}, again)
}

func TestMakeCode(t *testing.T) {
	got, err := ps2.MakeCode(ps2.KeyA)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1C}, got)

	got, err = ps2.MakeCode(ps2.KeyLeft)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0x6B}, got)

	got, err = ps2.MakeCode(0x30)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ps2.MakeCode(300)
	assert.ErrorIs(t, err, ps2.ErrKeycodeRange)
}

func TestStroke(t *testing.T) {
	got, err := ps2.Stroke(ps2.KeyS)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0xF0, 0x1B}, got)

	got, err = ps2.Stroke(ps2.KeyDown)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0x72, 0xE0, 0xF0, 0x72}, got)

	got, err = ps2.Stroke(0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapped(t *testing.T) {
	assert.Equal(t, []uint8{
		0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
		0x10, 0x11, 0x12, 0x13,
		0x19,
		0x26, 0x27, 0x28,
		0x6F,
		0x71, 0x72, 0x74,
	}, ps2.Mapped())

	for _, k := range ps2.Mapped() {
		_, ok := ps2.KeyName[k]
		assert.True(t, ok, "keycode %#x has no name", k)
	}
}

func TestScancodeString(t *testing.T) {
	assert.Equal(t, "-", ps2.Scancode{}.String())
	assert.Equal(t, "1c", ps2.SimpleCode(0x1C).String())
	assert.Equal(t, "e0 75", ps2.ExtendedCode(0x75).String())
	assert.Equal(t, "extended", ps2.Extended.String())
	assert.True(t, ps2.Scancode{}.IsAbsent())
}

func TestParseKeycode(t *testing.T) {
	type testCase struct {
		in       string
		expected int
		rangeErr bool
		fail     bool
	}

	cases := []testCase{
		{in: "10", expected: 10},
		{in: "0x6f", expected: 0x6F},
		{in: " 0X72 ", expected: 0x72},
		{in: "up", expected: ps2.KeyUp},
		{in: "Digit1", expected: ps2.Key1},
		{in: "d", expected: ps2.KeyD},
		{in: "0", expected: 0},
		{in: "010", expected: 10},
		{in: "0x0a", expected: 10},
		{in: "255", expected: 255},
		{in: "256", rangeErr: true, fail: true},
		{in: "-1", rangeErr: true, fail: true},
		{in: "", fail: true},
		{in: "Hyper", fail: true},
		{in: "0b1010", fail: true},
		{in: "0o12", fail: true},
		{in: "1_0", fail: true},
		{in: "0x", fail: true},
		{in: "0x-1", fail: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ps2.ParseKeycode(tc.in)
			if tc.fail {
				require.Error(t, err)
				if tc.rangeErr {
					assert.ErrorIs(t, err, ps2.ErrKeycodeRange)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

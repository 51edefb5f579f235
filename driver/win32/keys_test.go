package win32

import (
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestVirtualKeyCode(t *testing.T) {
	tests := []struct {
		vk   uint32
		want key.Code
	}{
		{'A', key.CodeA},
		{'Z', key.CodeZ},
		{'0', key.Code0},
		{'7', key.Code7},
		{_VK_NUMPAD0 + 3, key.CodeKeypad3},
		{_VK_F1, key.CodeF1},
		{_VK_F24, key.CodeF24},
		{_VK_RETURN, key.CodeReturnEnter},
		{_VK_ESCAPE, key.CodeEscape},
		{_VK_RSHIFT, key.CodeRightShift},
		{_VK_OEM_4, key.CodeLeftSquareBracket},
		{0xFF, key.CodeUnknown},
	}
	for _, tt := range tests {
		if got := virtualKeyCode(tt.vk); got != tt.want {
			t.Errorf("virtualKeyCode(%#x) = %v, want %v", tt.vk, got, tt.want)
		}
	}
}

func TestKeyModifiers(t *testing.T) {
	down := func(keys ...int32) func(int32) int16 {
		return func(vk int32) int16 {
			for _, k := range keys {
				if k == vk {
					return -0x8000
				}
			}
			return 0
		}
	}

	tests := []struct {
		name string
		keys []int32
		want key.Modifiers
	}{
		{"none", nil, 0},
		{"shift", []int32{_VK_SHIFT}, key.ModShift},
		{"control alt", []int32{_VK_CONTROL, _VK_MENU}, key.ModControl | key.ModAlt},
		{"right windows key", []int32{_VK_RWIN}, key.ModMeta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyModifiers(down(tt.keys...)); got != tt.want {
				t.Errorf("keyModifiers() = %v, want %v", got, tt.want)
			}
		})
	}
}

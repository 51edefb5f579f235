//go:build glfw

package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want key.Code
	}{
		{glfw.KeyA, key.CodeA},
		{glfw.KeyQ, key.CodeQ},
		{glfw.Key5, key.Code5},
		{glfw.KeyKP9, key.CodeKeypad9},
		{glfw.KeyF12, key.CodeF12},
		{glfw.KeyEscape, key.CodeEscape},
		{glfw.KeyRightSuper, key.CodeRightGUI},
		{glfw.KeyWorld1, key.CodeUnknown},
	}
	for _, tt := range tests {
		if got := keyCode(tt.in); got != tt.want {
			t.Errorf("keyCode(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModifiers(t *testing.T) {
	got := modifiers(glfw.ModShift | glfw.ModSuper | glfw.ModCapsLock)
	if want := key.ModShift | key.ModMeta; got != want {
		t.Errorf("modifiers() = %v, want %v", got, want)
	}
}

func TestScrollButtons(t *testing.T) {
	tests := []struct {
		name       string
		xoff, yoff float64
		want       []mouse.Button
	}{
		{"none", 0, 0, nil},
		{"up", 0, 1.5, []mouse.Button{mouse.ButtonWheelUp}},
		{"down left", -1, -1, []mouse.Button{mouse.ButtonWheelDown, mouse.ButtonWheelLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, scrollButtons(tt.xoff, tt.yoff)); diff != "" {
				t.Errorf("scrollButtons mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModeLayout(t *testing.T) {
	l := modeLayout(8, 8, 8, 8)
	if !l.IsRGBA32() || l.Red.Shift != 0 || l.Alpha.Shift != 24 {
		t.Errorf("modeLayout(8,8,8,8) = %+v", l)
	}
	if l := modeLayout(5, 6, 5, 0); l.BitsPerPixel != 16 || l.HasAlpha() {
		t.Errorf("modeLayout(5,6,5,0) = %+v", l)
	}
}

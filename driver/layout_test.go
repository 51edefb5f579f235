package driver

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestChannelFromMask(t *testing.T) {
	tests := []struct {
		mask uint32
		want Channel
	}{
		{0x00ff0000, Channel{Bits: 8, Shift: 16}},
		{0x0000f800, Channel{Bits: 5, Shift: 11}},
		{0x000007e0, Channel{Bits: 6, Shift: 5}},
		{0, Channel{}},
	}
	for _, tt := range tests {
		got := ChannelFromMask(tt.mask)
		if got != tt.want {
			t.Errorf("ChannelFromMask(%#x) = %+v, want %+v", tt.mask, got, tt.want)
		}
		if got.Mask() != tt.mask {
			t.Errorf("Channel%+v.Mask() = %#x, want %#x", got, got.Mask(), tt.mask)
		}
	}
}

func TestLayoutTextureFormat(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   gputypes.TextureFormat
	}{
		{"rgba", LayoutRGBA8888, gputypes.TextureFormatRGBA8Unorm},
		{"bgra", LayoutBGRA8888, gputypes.TextureFormatBGRA8Unorm},
		{"bgrx", LayoutBGRX8888, gputypes.TextureFormatBGRA8Unorm},
		{"rgb565", LayoutRGB565, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		if got := tt.layout.TextureFormat(); got != tt.want {
			t.Errorf("%s: TextureFormat() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLayoutPredicates(t *testing.T) {
	if !LayoutRGBA8888.IsRGBA32() || !LayoutRGBA8888.HasAlpha() {
		t.Fatalf("RGBA8888 should be a 32 bit format with alpha")
	}
	if LayoutBGRX8888.HasAlpha() {
		t.Fatalf("BGRX8888 has no alpha channel")
	}
	if got := LayoutRGB565.ColorBits(); got != 16 {
		t.Fatalf("RGB565 ColorBits() = %d, want 16", got)
	}
}

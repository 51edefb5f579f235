package win32

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/winkit/driver"
)

func rgbaDescriptor(flags uint32, alpha byte) *_PIXELFORMATDESCRIPTOR {
	return &_PIXELFORMATDESCRIPTOR{
		DwFlags:     flags,
		IPixelType:  _PFD_TYPE_RGBA,
		CColorBits:  24,
		CRedBits:    8,
		CRedShift:   16,
		CGreenBits:  8,
		CGreenShift: 8,
		CBlueBits:   8,
		CAlphaBits:  alpha,
		CAlphaShift: 24,
	}
}

func TestDescriptorLayout(t *testing.T) {
	l, ok := descriptorLayout(rgbaDescriptor(_PFD_DRAW_TO_WINDOW|_PFD_DOUBLEBUFFER, 8))
	if !ok {
		t.Fatal("descriptorLayout rejected a drawable RGBA format")
	}
	want := driver.LayoutBGRA8888
	want.DoubleBuffered = true
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if l.TextureFormat() != driver.LayoutBGRA8888.TextureFormat() {
		t.Errorf("TextureFormat() = %v", l.TextureFormat())
	}
}

func TestDescriptorLayoutRejects(t *testing.T) {
	tests := []struct {
		name string
		pfd  *_PIXELFORMATDESCRIPTOR
	}{
		{"bitmap only", rgbaDescriptor(0, 8)},
		{"palette", &_PIXELFORMATDESCRIPTOR{DwFlags: _PFD_DRAW_TO_WINDOW, IPixelType: 1, CColorBits: 8}},
		{"too few bits", &_PIXELFORMATDESCRIPTOR{DwFlags: _PFD_DRAW_TO_WINDOW, CColorBits: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := descriptorLayout(tt.pfd); ok {
				t.Error("descriptorLayout accepted the format")
			}
		})
	}
}

func TestDedupeFormats(t *testing.T) {
	a, _ := descriptorLayout(rgbaDescriptor(_PFD_DRAW_TO_WINDOW, 8))
	b, _ := descriptorLayout(rgbaDescriptor(_PFD_DRAW_TO_WINDOW, 0))
	formats := []*pixelFormat{
		{index: 1, layout: a},
		{index: 2, layout: a},
		{index: 3, layout: b},
		{index: 4, layout: b},
	}
	got := dedupeFormats(formats)
	var indexes []int32
	for _, pf := range got {
		indexes = append(indexes, pf.index)
	}
	if diff := cmp.Diff([]int32{1, 3}, indexes); diff != "" {
		t.Errorf("kept formats mismatch (-want +got):\n%s", diff)
	}
}

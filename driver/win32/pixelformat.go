package win32

import "github.com/1broseidon/winkit/driver"

type _PIXELFORMATDESCRIPTOR struct {
	NSize           uint16
	NVersion        uint16
	DwFlags         uint32
	IPixelType      byte
	CColorBits      byte
	CRedBits        byte
	CRedShift       byte
	CGreenBits      byte
	CGreenShift     byte
	CBlueBits       byte
	CBlueShift      byte
	CAlphaBits      byte
	CAlphaShift     byte
	CAccumBits      byte
	CAccumRedBits   byte
	CAccumGreenBits byte
	CAccumBlueBits  byte
	CAccumAlphaBits byte
	CDepthBits      byte
	CStencilBits    byte
	CAuxBuffers     byte
	ILayerType      byte
	BReserved       byte
	DwLayerMask     uint32
	DwVisibleMask   uint32
	DwDamageMask    uint32
}

const (
	_PFD_DOUBLEBUFFER   = 0x00000001
	_PFD_DRAW_TO_WINDOW = 0x00000004
	_PFD_TYPE_RGBA      = 0
)

// pixelFormat is one entry of the desktop device context's format list.
type pixelFormat struct {
	index  int32
	layout driver.Layout
}

func (pf *pixelFormat) Layout() driver.Layout { return pf.layout }

func (pf *pixelFormat) Equal(other driver.PixelFormat) bool {
	o, ok := other.(*pixelFormat)
	return ok && o.index == pf.index && o.layout == pf.layout
}

// descriptorLayout converts a format descriptor. ok is false for formats a
// window cannot use: palette formats, formats that cannot draw to a window
// and anything below 15 color bits.
func descriptorLayout(pfd *_PIXELFORMATDESCRIPTOR) (l driver.Layout, ok bool) {
	if pfd.IPixelType != _PFD_TYPE_RGBA || pfd.DwFlags&_PFD_DRAW_TO_WINDOW == 0 || pfd.CColorBits < 15 {
		return driver.Layout{}, false
	}
	depth := int(pfd.CRedBits) + int(pfd.CGreenBits) + int(pfd.CBlueBits)
	bpp := 16
	if depth+int(pfd.CAlphaBits) > 16 {
		bpp = 32
	}
	return driver.Layout{
		Model:          driver.TrueColor,
		Depth:          depth + int(pfd.CAlphaBits),
		BitsPerPixel:   bpp,
		Red:            driver.Channel{Bits: pfd.CRedBits, Shift: pfd.CRedShift},
		Green:          driver.Channel{Bits: pfd.CGreenBits, Shift: pfd.CGreenShift},
		Blue:           driver.Channel{Bits: pfd.CBlueBits, Shift: pfd.CBlueShift},
		Alpha:          driver.Channel{Bits: pfd.CAlphaBits, Shift: pfd.CAlphaShift},
		DoubleBuffered: pfd.DwFlags&_PFD_DOUBLEBUFFER != 0,
	}, true
}

// dedupeFormats keeps the first format of every distinct layout. Drivers
// list many formats that differ only in depth, stencil or accumulation
// buffers, which a Layout does not describe.
func dedupeFormats(formats []*pixelFormat) []*pixelFormat {
	seen := make(map[driver.Layout]bool, len(formats))
	out := formats[:0]
	for _, pf := range formats {
		if seen[pf.layout] {
			continue
		}
		seen[pf.layout] = true
		out = append(out, pf)
	}
	return out
}

package x11

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
)

// Screen is one X screen of the connected display.
type Screen struct {
	Index int
	Info  *xproto.ScreenInfo
}

// Bounds returns the screen area in its root window's coordinates.
func (s Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.Info.WidthInPixels), int(s.Info.HeightInPixels))
}

// Visual describes an X visual together with the depth it is offered at.
type Visual struct {
	ID           xproto.Visualid
	Class        byte
	Depth        byte
	BitsPerPixel byte
	RedMask      uint32
	GreenMask    uint32
	BlueMask     uint32
}

// Screens returns every screen of the display in server order.
func (c *Connection) Screens() []Screen {
	setup := c.XUtil.Setup()
	screens := make([]Screen, len(setup.Roots))
	for i := range setup.Roots {
		screens[i] = Screen{Index: i, Info: &setup.Roots[i]}
	}
	return screens
}

// DefaultScreen returns the screen named by the display string.
func (c *Connection) DefaultScreen() Screen {
	return Screen{Index: c.XUtil.Conn().DefaultScreen, Info: c.XUtil.Screen()}
}

// ColorVisuals returns the TrueColor and DirectColor visuals of s. The
// screen's root visual comes first.
func (c *Connection) ColorVisuals(s Screen) []Visual {
	bpp := make(map[byte]byte)
	for _, f := range c.XUtil.Setup().PixmapFormats {
		bpp[f.Depth] = f.BitsPerPixel
	}

	var root *Visual
	var visuals []Visual
	for _, d := range s.Info.AllowedDepths {
		for _, v := range d.Visuals {
			if v.Class != xproto.VisualClassTrueColor && v.Class != xproto.VisualClassDirectColor {
				continue
			}
			vis := Visual{
				ID:           v.VisualId,
				Class:        v.Class,
				Depth:        d.Depth,
				BitsPerPixel: bpp[d.Depth],
				RedMask:      v.RedMask,
				GreenMask:    v.GreenMask,
				BlueMask:     v.BlueMask,
			}
			if v.VisualId == s.Info.RootVisual && d.Depth == s.Info.RootDepth {
				root = &vis
				continue
			}
			visuals = append(visuals, vis)
		}
	}
	if root != nil {
		visuals = append([]Visual{*root}, visuals...)
	}
	return visuals
}

// AlphaMask returns the bits of a pixel not covered by the color masks, for
// depths that carry an alpha channel.
func (v Visual) AlphaMask() uint32 {
	if v.Depth <= 24 {
		return 0
	}
	var all uint32 = 1<<v.Depth - 1
	if v.Depth >= 32 {
		all = 0xffffffff
	}
	return all &^ (v.RedMask | v.GreenMask | v.BlueMask)
}

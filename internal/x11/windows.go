package x11

import (
	"image"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
)

// SetTitle sets both the EWMH and ICCCM names so every window manager shows
// the same title.
func (c *Connection) SetTitle(win xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, win, title); err != nil {
		return err
	}
	if err := icccm.WmNameSet(c.XUtil, win, title); err != nil {
		return err
	}
	return icccm.WmIconNameSet(c.XUtil, win, title)
}

// Title reads the window title, preferring the EWMH name.
func (c *Connection) Title(win xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, win)
	if err == nil && strings.TrimSpace(title) != "" {
		return title, nil
	}
	title, icccmErr := icccm.WmNameGet(c.XUtil, win)
	if icccmErr != nil {
		if err != nil {
			// Neither property is set: an untitled window.
			return "", nil
		}
		return "", icccmErr
	}
	return title, nil
}

// EnableDeleteWindow subscribes win to WM_DELETE_WINDOW so closing it through
// the window manager produces a client message instead of killing the client.
func (c *Connection) EnableDeleteWindow(win xproto.Window) error {
	return icccm.WmProtocolsSet(c.XUtil, win, []string{"WM_DELETE_WINDOW"})
}

// SendDeleteWindow delivers a WM_DELETE_WINDOW client message to win, the
// same message a window manager sends when the user closes it.
func (c *Connection) SendDeleteWindow(win xproto.Window) error {
	protocols, err := c.Atom("WM_PROTOCOLS")
	if err != nil {
		return err
	}
	del, err := c.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return err
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   protocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(del), 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		win,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}

// SetSizeHints publishes WM_NORMAL_HINTS. A fixed window gets equal minimum
// and maximum sizes; pos is only advertised when explicit is true.
func (c *Connection) SetSizeHints(win xproto.Window, pos, size image.Point, explicit, fixed bool) error {
	hints := &icccm.NormalHints{
		Width:  uint(size.X),
		Height: uint(size.Y),
	}
	if explicit {
		hints.Flags |= icccm.SizeHintUSPosition | icccm.SizeHintPPosition
		hints.X, hints.Y = pos.X, pos.Y
	}
	if fixed {
		hints.Flags |= icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		hints.MinWidth, hints.MaxWidth = uint(size.X), uint(size.X)
		hints.MinHeight, hints.MaxHeight = uint(size.Y), uint(size.Y)
	}
	return icccm.WmNormalHintsSet(c.XUtil, win, hints)
}

// SetDecorated asks the window manager to draw or omit the frame.
func (c *Connection) SetDecorated(win xproto.Window, decorated bool) error {
	hints := &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	}
	if decorated {
		hints.Decoration = motif.DecorationAll
	}
	return motif.WmHintsSet(c.XUtil, win, hints)
}

// Geometry returns a window's size and its position relative to root.
func (c *Connection) Geometry(win xproto.Window) (pos, size image.Point, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return pos, size, err
	}
	pos, err = c.RootPosition(win)
	if err != nil {
		return pos, size, err
	}
	return pos, image.Pt(int(geom.Width), int(geom.Height)), nil
}

// RootPosition translates the origin of win into root coordinates.
func (c *Connection) RootPosition(win xproto.Window) (image.Point, error) {
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		win,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(int(translate.DstX), int(translate.DstY)), nil
}

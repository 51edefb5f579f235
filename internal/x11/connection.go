// Package x11 wraps an xgbutil connection with the helpers the X11 window
// driver needs: screens and visuals, RandR monitors, window properties and
// keysym translation.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Connection is an X connection plus per-connection caches. It is not safe
// for concurrent use.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	atoms      map[string]xproto.Atom
	randrReady bool
}

// NewConnection connects to display, or to $DISPLAY when display is empty.
// A non-empty xauthority replaces $XAUTHORITY for the connection attempt.
func NewConnection(display, xauthority string) (*Connection, error) {
	if xauthority != "" {
		if err := os.Setenv("XAUTHORITY", xauthority); err != nil {
			return nil, fmt.Errorf("set XAUTHORITY: %w", err)
		}
	}

	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, err
	}

	// Loads the keyboard and modifier maps used for keysym lookups.
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		atoms: make(map[string]xproto.Atom),
	}, nil
}

// Conn returns the underlying xgb connection.
func (c *Connection) Conn() *xgb.Conn {
	return c.XUtil.Conn()
}

// Atom interns name, caching the result.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	a, err := xprop.Atm(c.XUtil, name)
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	c.atoms[name] = a
	return a, nil
}

// Close disconnects from the server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

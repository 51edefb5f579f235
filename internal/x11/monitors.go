package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor is one active RandR output of a screen.
type Monitor struct {
	Name   string
	Bounds image.Rectangle
}

// Monitors returns the active outputs of the screen rooted at root, one per
// enabled CRTC. It fails when the server lacks the RANDR extension.
func (c *Connection) Monitors(root xproto.Window) ([]Monitor, error) {
	if !c.randrReady {
		if err := randr.Init(c.Conn()); err != nil {
			return nil, fmt.Errorf("randr: %w", err)
		}
		c.randrReady = true
	}

	res, err := randr.GetScreenResourcesCurrent(c.Conn(), root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}

	var out []Monitor
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(c.Conn(), crtc, res.ConfigTimestamp).Reply()
		if err != nil || len(info.Outputs) == 0 || info.Width == 0 || info.Height == 0 {
			continue
		}
		m := Monitor{
			Name:   fmt.Sprintf("crtc-%d", crtc),
			Bounds: image.Rect(int(info.X), int(info.Y), int(info.X)+int(info.Width), int(info.Y)+int(info.Height)),
		}
		if oi, err := randr.GetOutputInfo(c.Conn(), info.Outputs[0], res.ConfigTimestamp).Reply(); err == nil {
			m.Name = string(oi.Name)
		}
		out = append(out, m)
	}
	return out, nil
}

package winkit

import (
	"image"

	"github.com/1broseidon/winkit/driver"
)

// Device is a display output. It is valid while its Context is open. Name,
// Index and Bounds describe the device as it was when enumerated and keep
// answering after Close; every other method fails with ErrContextClosed.
type Device struct {
	ctx *Context
	drv driver.Device
}

// Name returns a human readable device name captured at enumeration.
func (d *Device) Name() string { return d.drv.Name() }

// Index returns the driver's ordinal for the device.
func (d *Device) Index() int { return d.drv.Index() }

// Bounds returns the device area in screen coordinates at enumeration
// time. Call Context.Devices again to observe changes.
func (d *Device) Bounds() image.Rectangle { return d.drv.Bounds() }

// PixelFormats lists the formats windows on d can use.
func (d *Device) PixelFormats() ([]*PixelFormat, error) {
	if err := d.ctx.alive(); err != nil {
		return nil, err
	}
	pfs, err := d.ctx.drv.PixelFormats(d.drv)
	if err != nil {
		return nil, err
	}
	out := make([]*PixelFormat, len(pfs))
	for i, pf := range pfs {
		out[i] = &PixelFormat{ctx: d.ctx, drv: pf}
	}
	return out, nil
}

// DefaultPixelFormat returns the format used when a builder names none.
func (d *Device) DefaultPixelFormat() (*PixelFormat, error) {
	if err := d.ctx.alive(); err != nil {
		return nil, err
	}
	pf, err := d.drv.DefaultPixelFormat()
	if err != nil {
		return nil, err
	}
	return &PixelFormat{ctx: d.ctx, drv: pf}, nil
}

// Supports reports whether windows on d can be created with pf.
func (d *Device) Supports(pf *PixelFormat) bool {
	if d.ctx.closed || pf == nil || pf.ctx != d.ctx {
		return false
	}
	return d.drv.SupportsPixelFormat(pf.drv)
}

// PixelFormat is an immutable surface format descriptor.
type PixelFormat struct {
	ctx *Context
	drv driver.PixelFormat
}

// Layout describes how pixels of this format are laid out in memory.
func (pf *PixelFormat) Layout() driver.Layout { return pf.drv.Layout() }

// Equal reports whether pf and other describe the same native format.
func (pf *PixelFormat) Equal(other *PixelFormat) bool {
	if other == nil || pf.ctx != other.ctx {
		return false
	}
	return pf.drv.Equal(other.drv)
}

func (pf *PixelFormat) String() string { return pf.drv.Layout().String() }

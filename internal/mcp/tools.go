package mcp

import (
	"context"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
)

func (s *Server) registry() *driver.Registry {
	if s.opts.Registry != nil {
		return s.opts.Registry
	}
	return driver.Default
}

func (s *Server) handleListDrivers(_ context.Context, _ *mcpsdk.CallToolRequest, args ListDriversInput) (*mcpsdk.CallToolResult, ListDriversOutput, error) {
	var out ListDriversOutput
	for _, info := range s.registry().Drivers() {
		d := DriverInfo{
			Name:     info.Name,
			Priority: info.Priority,
			Disabled: slices.Contains(s.opts.Disabled, info.Name),
		}
		if args.Probe && !d.Disabled {
			err := s.withContext(info.Name, func(*winkit.Context) error { return nil })
			ok := err == nil
			d.Available = &ok
			if err != nil {
				d.Error = err.Error()
			}
		}
		out.Drivers = append(out.Drivers, d)
	}
	return nil, out, nil
}

func (s *Server) handleListDevices(_ context.Context, _ *mcpsdk.CallToolRequest, args ListDevicesInput) (*mcpsdk.CallToolResult, ListDevicesOutput, error) {
	var out ListDevicesOutput
	err := s.withContext(args.Driver, func(ctx *winkit.Context) error {
		out.Driver = ctx.Driver()
		devices, err := ctx.Devices()
		if err != nil {
			return err
		}
		def, err := ctx.DefaultDevice()
		if err != nil {
			return err
		}
		for _, d := range devices {
			formats, err := d.PixelFormats()
			if err != nil {
				return err
			}
			b := d.Bounds()
			out.Devices = append(out.Devices, DeviceInfo{
				Index:        d.Index(),
				Name:         d.Name(),
				X:            b.Min.X,
				Y:            b.Min.Y,
				Width:        b.Dx(),
				Height:       b.Dy(),
				Default:      d.Index() == def.Index(),
				PixelFormats: len(formats),
			})
		}
		return nil
	})
	if err != nil {
		return nil, ListDevicesOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleListPixelFormats(_ context.Context, _ *mcpsdk.CallToolRequest, args ListPixelFormatsInput) (*mcpsdk.CallToolResult, ListPixelFormatsOutput, error) {
	var out ListPixelFormatsOutput
	err := s.withContext(args.Driver, func(ctx *winkit.Context) error {
		out.Driver = ctx.Driver()
		dev, err := findDevice(ctx, args.Device)
		if err != nil {
			return err
		}
		out.Device = dev.Name()

		formats, err := dev.PixelFormats()
		if err != nil {
			return err
		}
		def, err := dev.DefaultPixelFormat()
		if err != nil {
			return err
		}
		for i, pf := range formats {
			l := pf.Layout()
			info := PixelFormatInfo{
				Index:          i,
				Layout:         l.String(),
				Depth:          l.Depth,
				BitsPerPixel:   l.BitsPerPixel,
				Alpha:          l.HasAlpha(),
				DoubleBuffered: l.DoubleBuffered,
				Default:        pf.Equal(def),
			}
			if tf := l.TextureFormat(); tf != gputypes.TextureFormatUndefined {
				info.TextureFormat = tf.String()
			}
			out.Formats = append(out.Formats, info)
		}
		return nil
	})
	if err != nil {
		return nil, ListPixelFormatsOutput{}, err
	}
	return nil, out, nil
}

func findDevice(ctx *winkit.Context, index *int) (*winkit.Device, error) {
	if index == nil {
		return ctx.DefaultDevice()
	}
	devices, err := ctx.Devices()
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.Index() == *index {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no device with index %d (have %d devices)", *index, len(devices))
}

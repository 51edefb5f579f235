package driver

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/gputypes"
)

// Channel locates one color component inside a pixel.
type Channel struct {
	Bits  uint8
	Shift uint8
}

// ChannelFromMask derives a channel from a bit mask such as an X visual's
// red_mask.
func ChannelFromMask(mask uint32) Channel {
	if mask == 0 {
		return Channel{}
	}
	return Channel{
		Bits:  uint8(bits.OnesCount32(mask)),
		Shift: uint8(bits.TrailingZeros32(mask)),
	}
}

// Mask returns the bit mask covered by c.
func (c Channel) Mask() uint32 {
	if c.Bits == 0 {
		return 0
	}
	return (1<<c.Bits - 1) << c.Shift
}

// ColorModel is the way pixel values map to colors.
type ColorModel int

const (
	TrueColor ColorModel = iota
	DirectColor
	Indexed
)

func (m ColorModel) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case DirectColor:
		return "directcolor"
	case Indexed:
		return "indexed"
	}
	return fmt.Sprintf("ColorModel(%d)", int(m))
}

// Layout is the memory layout of a pixel format.
type Layout struct {
	Model        ColorModel
	Depth        int
	BitsPerPixel int
	Red          Channel
	Green        Channel
	Blue         Channel
	Alpha        Channel

	DoubleBuffered bool
}

func (l Layout) HasAlpha() bool { return l.Alpha.Bits > 0 }

// ColorBits returns the sum of all channel widths.
func (l Layout) ColorBits() int {
	return int(l.Red.Bits) + int(l.Green.Bits) + int(l.Blue.Bits) + int(l.Alpha.Bits)
}

// IsRGBA32 reports whether l is a 32 bit format with four 8 bit channels.
func (l Layout) IsRGBA32() bool {
	return l.BitsPerPixel == 32 && l.Red.Bits == 8 && l.Green.Bits == 8 &&
		l.Blue.Bits == 8 && l.Alpha.Bits == 8
}

// TextureFormat maps l to the GPU texture format with the same byte order
// in memory, assuming little-endian pixels. It returns
// gputypes.TextureFormatUndefined when there is no exact match.
func (l Layout) TextureFormat() gputypes.TextureFormat {
	if l.BitsPerPixel != 32 || l.Red.Bits != 8 || l.Green.Bits != 8 || l.Blue.Bits != 8 {
		return gputypes.TextureFormatUndefined
	}
	switch {
	case l.Red.Shift == 0 && l.Green.Shift == 8 && l.Blue.Shift == 16:
		return gputypes.TextureFormatRGBA8Unorm
	case l.Blue.Shift == 0 && l.Green.Shift == 8 && l.Red.Shift == 16:
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

func (l Layout) String() string {
	s := fmt.Sprintf("%s depth=%d bpp=%d r=%d@%d g=%d@%d b=%d@%d",
		l.Model, l.Depth, l.BitsPerPixel,
		l.Red.Bits, l.Red.Shift, l.Green.Bits, l.Green.Shift, l.Blue.Bits, l.Blue.Shift)
	if l.HasAlpha() {
		s += fmt.Sprintf(" a=%d@%d", l.Alpha.Bits, l.Alpha.Shift)
	}
	if l.DoubleBuffered {
		s += " double-buffered"
	}
	return s
}

// Common layouts used by drivers that describe formats themselves.
var (
	LayoutRGBA8888 = Layout{
		Model: TrueColor, Depth: 32, BitsPerPixel: 32,
		Red: Channel{8, 0}, Green: Channel{8, 8}, Blue: Channel{8, 16}, Alpha: Channel{8, 24},
	}
	LayoutBGRA8888 = Layout{
		Model: TrueColor, Depth: 32, BitsPerPixel: 32,
		Red: Channel{8, 16}, Green: Channel{8, 8}, Blue: Channel{8, 0}, Alpha: Channel{8, 24},
	}
	LayoutBGRX8888 = Layout{
		Model: TrueColor, Depth: 24, BitsPerPixel: 32,
		Red: Channel{8, 16}, Green: Channel{8, 8}, Blue: Channel{8, 0},
	}
	LayoutRGB565 = Layout{
		Model: TrueColor, Depth: 16, BitsPerPixel: 16,
		Red: Channel{5, 11}, Green: Channel{6, 5}, Blue: Channel{5, 0},
	}
)

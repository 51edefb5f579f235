package mcp

// ListDriversInput is the input for the list_drivers tool.
type ListDriversInput struct {
	Probe bool `json:"probe,omitempty" jsonschema:"When true, open and close each driver to report whether it works on this machine"`
}

// DriverInfo describes one registered driver.
type DriverInfo struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Disabled bool   `json:"disabled"`
	// Available and Error are set only when probing.
	Available *bool  `json:"available,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ListDriversOutput is the output for the list_drivers tool.
type ListDriversOutput struct {
	Drivers []DriverInfo `json:"drivers"`
}

// ListDevicesInput is the input for the list_devices tool.
type ListDevicesInput struct {
	Driver string `json:"driver,omitempty" jsonschema:"Driver to open (default: automatic selection)"`
}

// DeviceInfo describes one display device.
type DeviceInfo struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Default      bool   `json:"default"`
	PixelFormats int    `json:"pixel_formats"`
}

// ListDevicesOutput is the output for the list_devices tool.
type ListDevicesOutput struct {
	Driver  string       `json:"driver"`
	Devices []DeviceInfo `json:"devices"`
}

// ListPixelFormatsInput is the input for the list_pixel_formats tool.
type ListPixelFormatsInput struct {
	Driver string `json:"driver,omitempty" jsonschema:"Driver to open (default: automatic selection)"`
	Device *int   `json:"device,omitempty" jsonschema:"Device index from list_devices (default: the default device)"`
}

// PixelFormatInfo describes one pixel format.
type PixelFormatInfo struct {
	Index          int    `json:"index"`
	Layout         string `json:"layout"`
	Depth          int    `json:"depth"`
	BitsPerPixel   int    `json:"bits_per_pixel"`
	Alpha          bool   `json:"alpha"`
	DoubleBuffered bool   `json:"double_buffered"`
	TextureFormat  string `json:"texture_format,omitempty"`
	Default        bool   `json:"default"`
}

// ListPixelFormatsOutput is the output for the list_pixel_formats tool.
type ListPixelFormatsOutput struct {
	Driver  string            `json:"driver"`
	Device  string            `json:"device"`
	Formats []PixelFormatInfo `json:"formats"`
}

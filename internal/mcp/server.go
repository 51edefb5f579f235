package mcp

import (
	"context"
	"runtime"
	"sync"

	"github.com/go-logr/logr"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winkit"
)

const (
	ServerName    = "winkit"
	ServerVersion = "0.1.0"
)

// Server answers questions about the windowing drivers of this machine over
// MCP. Every tool call opens its own context and closes it before returning.
type Server struct {
	mcpServer *mcpsdk.Server
	opts      winkit.Options
	log       logr.Logger

	// mu serializes native access; some drivers allow one open context per
	// process.
	mu sync.Mutex
}

// NewServer returns a server that opens contexts with opts.
func NewServer(opts winkit.Options) *Server {
	s := &Server{
		opts: opts,
		log:  opts.Logger.WithName("mcp"),
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP on stdio, blocking until the client disconnects or ctx is
// done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_drivers",
		Description: "List registered windowing drivers in selection order. With probe set, each driver is opened and closed to report whether it works here.",
	}, s.handleListDrivers)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_devices",
		Description: "List the display devices (monitors or screens) of a driver, with their bounds in screen coordinates.",
	}, s.handleListDevices)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_pixel_formats",
		Description: "List the pixel formats a window can be created with on one device, including the matching GPU texture format when there is one.",
	}, s.handleListPixelFormats)
}

// withContext runs fn on a context opened for driverName, or on the
// automatically selected driver when driverName is empty. The goroutine stays
// on one OS thread for the lifetime of the context.
func (s *Server) withContext(driverName string, fn func(*winkit.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	opts := s.opts
	if driverName != "" {
		opts.Driver = driverName
	}
	ctx, err := winkit.Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil {
			s.log.Error(cerr, "close context", "driver", ctx.Driver())
		}
	}()
	return fn(ctx)
}

//go:build linux || freebsd || openbsd || netbsd || dragonfly

package all

import _ "github.com/1broseidon/winkit/driver/x11"

//go:build windows

package all

import _ "github.com/1broseidon/winkit/driver/win32"

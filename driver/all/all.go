// Package all registers every driver that builds on the current platform.
//
//	import _ "github.com/1broseidon/winkit/driver/all"
package all

import (
	_ "github.com/1broseidon/winkit/driver/headless"
)

//go:build glfw

package all

import _ "github.com/1broseidon/winkit/driver/glfw"

package win32

import "golang.org/x/mobile/event/key"

// Virtual-key codes from winuser.h.
const (
	_VK_BACK     = 0x08
	_VK_TAB      = 0x09
	_VK_RETURN   = 0x0D
	_VK_SHIFT    = 0x10
	_VK_CONTROL  = 0x11
	_VK_MENU     = 0x12
	_VK_PAUSE    = 0x13
	_VK_CAPITAL  = 0x14
	_VK_ESCAPE   = 0x1B
	_VK_SPACE    = 0x20
	_VK_PRIOR    = 0x21
	_VK_NEXT     = 0x22
	_VK_END      = 0x23
	_VK_HOME     = 0x24
	_VK_LEFT     = 0x25
	_VK_UP       = 0x26
	_VK_RIGHT    = 0x27
	_VK_DOWN     = 0x28
	_VK_INSERT   = 0x2D
	_VK_DELETE   = 0x2E
	_VK_HELP     = 0x2F
	_VK_LWIN     = 0x5B
	_VK_RWIN     = 0x5C
	_VK_NUMPAD0  = 0x60
	_VK_MULTIPLY = 0x6A
	_VK_ADD      = 0x6B
	_VK_SUBTRACT = 0x6D
	_VK_DECIMAL  = 0x6E
	_VK_DIVIDE   = 0x6F
	_VK_F1       = 0x70
	_VK_F24      = 0x87
	_VK_NUMLOCK  = 0x90
	_VK_LSHIFT   = 0xA0
	_VK_RSHIFT   = 0xA1
	_VK_LCONTROL = 0xA2
	_VK_RCONTROL = 0xA3
	_VK_LMENU    = 0xA4
	_VK_RMENU    = 0xA5

	_VK_VOLUME_MUTE = 0xAD
	_VK_VOLUME_DOWN = 0xAE
	_VK_VOLUME_UP   = 0xAF

	_VK_OEM_1      = 0xBA
	_VK_OEM_PLUS   = 0xBB
	_VK_OEM_COMMA  = 0xBC
	_VK_OEM_MINUS  = 0xBD
	_VK_OEM_PERIOD = 0xBE
	_VK_OEM_2      = 0xBF
	_VK_OEM_3      = 0xC0
	_VK_OEM_4      = 0xDB
	_VK_OEM_5      = 0xDC
	_VK_OEM_6      = 0xDD
	_VK_OEM_7      = 0xDE
)

var virtualKeycodes = map[uint32]key.Code{
	_VK_BACK:        key.CodeDeleteBackspace,
	_VK_TAB:         key.CodeTab,
	_VK_RETURN:      key.CodeReturnEnter,
	_VK_PAUSE:       key.CodePause,
	_VK_CAPITAL:     key.CodeCapsLock,
	_VK_ESCAPE:      key.CodeEscape,
	_VK_SPACE:       key.CodeSpacebar,
	_VK_PRIOR:       key.CodePageUp,
	_VK_NEXT:        key.CodePageDown,
	_VK_END:         key.CodeEnd,
	_VK_HOME:        key.CodeHome,
	_VK_LEFT:        key.CodeLeftArrow,
	_VK_UP:          key.CodeUpArrow,
	_VK_RIGHT:       key.CodeRightArrow,
	_VK_DOWN:        key.CodeDownArrow,
	_VK_INSERT:      key.CodeInsert,
	_VK_DELETE:      key.CodeDeleteForward,
	_VK_HELP:        key.CodeHelp,
	_VK_LWIN:        key.CodeLeftGUI,
	_VK_RWIN:        key.CodeRightGUI,
	_VK_MULTIPLY:    key.CodeKeypadAsterisk,
	_VK_ADD:         key.CodeKeypadPlusSign,
	_VK_SUBTRACT:    key.CodeKeypadHyphenMinus,
	_VK_DECIMAL:     key.CodeKeypadFullStop,
	_VK_DIVIDE:      key.CodeKeypadSlash,
	_VK_NUMLOCK:     key.CodeKeypadNumLock,
	_VK_SHIFT:       key.CodeLeftShift,
	_VK_LSHIFT:      key.CodeLeftShift,
	_VK_RSHIFT:      key.CodeRightShift,
	_VK_CONTROL:     key.CodeLeftControl,
	_VK_LCONTROL:    key.CodeLeftControl,
	_VK_RCONTROL:    key.CodeRightControl,
	_VK_MENU:        key.CodeLeftAlt,
	_VK_LMENU:       key.CodeLeftAlt,
	_VK_RMENU:       key.CodeRightAlt,
	_VK_VOLUME_MUTE: key.CodeMute,
	_VK_VOLUME_DOWN: key.CodeVolumeDown,
	_VK_VOLUME_UP:   key.CodeVolumeUp,
	_VK_OEM_1:       key.CodeSemicolon,
	_VK_OEM_PLUS:    key.CodeEqualSign,
	_VK_OEM_COMMA:   key.CodeComma,
	_VK_OEM_MINUS:   key.CodeHyphenMinus,
	_VK_OEM_PERIOD:  key.CodeFullStop,
	_VK_OEM_2:       key.CodeSlash,
	_VK_OEM_3:       key.CodeGraveAccent,
	_VK_OEM_4:       key.CodeLeftSquareBracket,
	_VK_OEM_5:       key.CodeBackslash,
	_VK_OEM_6:       key.CodeRightSquareBracket,
	_VK_OEM_7:       key.CodeApostrophe,
}

var digitKeycodes = [...]key.Code{
	key.Code0, key.Code1, key.Code2, key.Code3, key.Code4,
	key.Code5, key.Code6, key.Code7, key.Code8, key.Code9,
}

var keypadKeycodes = [...]key.Code{
	key.CodeKeypad0, key.CodeKeypad1, key.CodeKeypad2, key.CodeKeypad3, key.CodeKeypad4,
	key.CodeKeypad5, key.CodeKeypad6, key.CodeKeypad7, key.CodeKeypad8, key.CodeKeypad9,
}

var functionKeycodes = [...]key.Code{
	key.CodeF1, key.CodeF2, key.CodeF3, key.CodeF4, key.CodeF5, key.CodeF6,
	key.CodeF7, key.CodeF8, key.CodeF9, key.CodeF10, key.CodeF11, key.CodeF12,
	key.CodeF13, key.CodeF14, key.CodeF15, key.CodeF16, key.CodeF17, key.CodeF18,
	key.CodeF19, key.CodeF20, key.CodeF21, key.CodeF22, key.CodeF23, key.CodeF24,
}

// virtualKeyCode maps a virtual-key code to a key code. Letters and digits
// use their ASCII values as virtual-key codes.
func virtualKeyCode(vk uint32) key.Code {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return key.CodeA + key.Code(vk-'A')
	case vk >= '0' && vk <= '9':
		return digitKeycodes[vk-'0']
	case vk >= _VK_NUMPAD0 && vk <= _VK_NUMPAD0+9:
		return keypadKeycodes[vk-_VK_NUMPAD0]
	case vk >= _VK_F1 && vk <= _VK_F24:
		return functionKeycodes[vk-_VK_F1]
	}
	if c, ok := virtualKeycodes[vk]; ok {
		return c
	}
	return key.CodeUnknown
}

// keyModifiers builds modifier flags from a GetKeyState style lookup, where
// a negative result means the key is down.
func keyModifiers(state func(vk int32) int16) key.Modifiers {
	var m key.Modifiers
	if state(_VK_SHIFT) < 0 {
		m |= key.ModShift
	}
	if state(_VK_CONTROL) < 0 {
		m |= key.ModControl
	}
	if state(_VK_MENU) < 0 {
		m |= key.ModAlt
	}
	if state(_VK_LWIN) < 0 || state(_VK_RWIN) < 0 {
		m |= key.ModMeta
	}
	return m
}

package x11

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"golang.org/x/mobile/event/key"
)

// Keysyms from X11/keysymdef.h that have no printable rune.
const (
	xkBackSpace   = 0xff08
	xkTab         = 0xff09
	xkISOLeftTab  = 0xfe20
	xkReturn      = 0xff0d
	xkPause       = 0xff13
	xkEscape      = 0xff1b
	xkHome        = 0xff50
	xkLeft        = 0xff51
	xkUp          = 0xff52
	xkRight       = 0xff53
	xkDown        = 0xff54
	xkPageUp      = 0xff55
	xkPageDown    = 0xff56
	xkEnd         = 0xff57
	xkInsert      = 0xff63
	xkHelp        = 0xff6a
	xkNumLock     = 0xff7f
	xkKPEnter     = 0xff8d
	xkKPMultiply  = 0xffaa
	xkKPAdd       = 0xffab
	xkKPSubtract  = 0xffad
	xkKPDecimal   = 0xffae
	xkKPDivide    = 0xffaf
	xkKP0         = 0xffb0
	xkKPEqual     = 0xffbd
	xkF1          = 0xffbe
	xkShiftL      = 0xffe1
	xkShiftR      = 0xffe2
	xkControlL    = 0xffe3
	xkControlR    = 0xffe4
	xkCapsLock    = 0xffe5
	xkMetaL       = 0xffe7
	xkMetaR       = 0xffe8
	xkAltL        = 0xffe9
	xkAltR        = 0xffea
	xkSuperL      = 0xffeb
	xkSuperR      = 0xffec
	xkDelete      = 0xffff
	xkMultiKey    = 0xff20
	xkUnicodeBase = 0x01000000
)

var specialKeycodes = map[xproto.Keysym]key.Code{
	xkBackSpace:  key.CodeDeleteBackspace,
	xkTab:        key.CodeTab,
	xkISOLeftTab: key.CodeTab,
	xkReturn:     key.CodeReturnEnter,
	xkPause:      key.CodePause,
	xkEscape:     key.CodeEscape,
	xkHome:       key.CodeHome,
	xkLeft:       key.CodeLeftArrow,
	xkUp:         key.CodeUpArrow,
	xkRight:      key.CodeRightArrow,
	xkDown:       key.CodeDownArrow,
	xkPageUp:     key.CodePageUp,
	xkPageDown:   key.CodePageDown,
	xkEnd:        key.CodeEnd,
	xkInsert:     key.CodeInsert,
	xkHelp:       key.CodeHelp,
	xkNumLock:    key.CodeKeypadNumLock,
	xkKPEnter:    key.CodeKeypadEnter,
	xkKPMultiply: key.CodeKeypadAsterisk,
	xkKPAdd:      key.CodeKeypadPlusSign,
	xkKPSubtract: key.CodeKeypadHyphenMinus,
	xkKPDecimal:  key.CodeKeypadFullStop,
	xkKPDivide:   key.CodeKeypadSlash,
	xkKPEqual:    key.CodeKeypadEqualSign,
	xkShiftL:     key.CodeLeftShift,
	xkShiftR:     key.CodeRightShift,
	xkControlL:   key.CodeLeftControl,
	xkControlR:   key.CodeRightControl,
	xkCapsLock:   key.CodeCapsLock,
	xkMetaL:      key.CodeLeftGUI,
	xkMetaR:      key.CodeRightGUI,
	xkAltL:       key.CodeLeftAlt,
	xkAltR:       key.CodeRightAlt,
	xkSuperL:     key.CodeLeftGUI,
	xkSuperR:     key.CodeRightGUI,
	xkDelete:     key.CodeDeleteForward,
	xkMultiKey:   key.CodeCompose,
}

var asciiKeycodes = map[rune]key.Code{
	' ':  key.CodeSpacebar,
	'-':  key.CodeHyphenMinus,
	'=':  key.CodeEqualSign,
	'[':  key.CodeLeftSquareBracket,
	']':  key.CodeRightSquareBracket,
	'\\': key.CodeBackslash,
	';':  key.CodeSemicolon,
	'\'': key.CodeApostrophe,
	'`':  key.CodeGraveAccent,
	',':  key.CodeComma,
	'.':  key.CodeFullStop,
	'/':  key.CodeSlash,
	'0':  key.Code0,
}

var functionKeycodes = [...]key.Code{
	key.CodeF1, key.CodeF2, key.CodeF3, key.CodeF4, key.CodeF5, key.CodeF6,
	key.CodeF7, key.CodeF8, key.CodeF9, key.CodeF10, key.CodeF11, key.CodeF12,
}

// KeysymCode maps an unshifted keysym to a key code.
func KeysymCode(sym xproto.Keysym) key.Code {
	if c, ok := specialKeycodes[sym]; ok {
		return c
	}
	switch {
	case sym >= 'a' && sym <= 'z':
		return key.CodeA + key.Code(sym-'a')
	case sym >= 'A' && sym <= 'Z':
		return key.CodeA + key.Code(sym-'A')
	case sym >= '1' && sym <= '9':
		return key.Code1 + key.Code(sym-'1')
	case sym >= xkKP0 && sym <= xkKP0+9:
		if sym == xkKP0 {
			return key.CodeKeypad0
		}
		return key.CodeKeypad1 + key.Code(sym-xkKP0-1)
	case sym >= xkF1 && sym < xkF1+xproto.Keysym(len(functionKeycodes)):
		return functionKeycodes[sym-xkF1]
	}
	if c, ok := asciiKeycodes[rune(sym)]; ok && sym < 0x80 {
		return c
	}
	return key.CodeUnknown
}

// KeysymRune returns the character a keysym produces, or -1.
func KeysymRune(sym xproto.Keysym) rune {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym)
	case sym >= xkKP0 && sym <= xkKP0+9:
		return '0' + rune(sym-xkKP0)
	case sym&0xff000000 == xkUnicodeBase:
		return rune(sym &^ xkUnicodeBase)
	case sym == xkReturn || sym == xkKPEnter:
		return '\r'
	case sym == xkTab:
		return '\t'
	}
	return -1
}

// X11 modifier masks from X11/X.h.
const (
	ShiftMask   = 1 << 0
	LockMask    = 1 << 1
	ControlMask = 1 << 2
	Mod1Mask    = 1 << 3
	Mod4Mask    = 1 << 6
)

// Modifiers converts an X11 key or button state.
func Modifiers(state uint16) key.Modifiers {
	var m key.Modifiers
	if state&ShiftMask != 0 {
		m |= key.ModShift
	}
	if state&ControlMask != 0 {
		m |= key.ModControl
	}
	if state&Mod1Mask != 0 {
		m |= key.ModAlt
	}
	if state&Mod4Mask != 0 {
		m |= key.ModMeta
	}
	return m
}

// LookupKey translates a keycode and modifier state into a rune and code.
func (c *Connection) LookupKey(keycode xproto.Keycode, state uint16) (rune, key.Code) {
	base := keybind.KeysymGet(c.XUtil, keycode, 0)
	sym := base
	if state&ShiftMask != 0 {
		if shifted := keybind.KeysymGet(c.XUtil, keycode, 1); shifted != 0 {
			sym = shifted
		}
	}
	r := KeysymRune(sym)
	if r >= 0 && state&LockMask != 0 {
		r = unicode.ToUpper(r)
	}
	return r, KeysymCode(base)
}

// RefreshKeyboard reloads the keyboard and modifier maps after a
// MappingNotify.
func (c *Connection) RefreshKeyboard() {
	keyMap, modMap := keybind.MapsGet(c.XUtil)
	keybind.KeyMapSet(c.XUtil, keyMap)
	keybind.ModMapSet(c.XUtil, modMap)
}

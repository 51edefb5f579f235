//go:build glfw

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

var keyCodes = map[glfw.Key]key.Code{
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyApostrophe:   key.CodeApostrophe,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyLeftBracket:  key.CodeLeftSquareBracket,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeyRightBracket: key.CodeRightSquareBracket,
	glfw.KeyGraveAccent:  key.CodeGraveAccent,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeDeleteBackspace,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyCapsLock:     key.CodeCapsLock,
	glfw.KeyNumLock:      key.CodeKeypadNumLock,
	glfw.KeyPause:        key.CodePause,
	glfw.KeyKPDecimal:    key.CodeKeypadFullStop,
	glfw.KeyKPDivide:     key.CodeKeypadSlash,
	glfw.KeyKPMultiply:   key.CodeKeypadAsterisk,
	glfw.KeyKPSubtract:   key.CodeKeypadHyphenMinus,
	glfw.KeyKPAdd:        key.CodeKeypadPlusSign,
	glfw.KeyKPEnter:      key.CodeKeypadEnter,
	glfw.KeyKPEqual:      key.CodeKeypadEqualSign,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftGUI,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightGUI,
}

var (
	digitCodes = [...]key.Code{
		key.Code0, key.Code1, key.Code2, key.Code3, key.Code4,
		key.Code5, key.Code6, key.Code7, key.Code8, key.Code9,
	}
	keypadCodes = [...]key.Code{
		key.CodeKeypad0, key.CodeKeypad1, key.CodeKeypad2, key.CodeKeypad3, key.CodeKeypad4,
		key.CodeKeypad5, key.CodeKeypad6, key.CodeKeypad7, key.CodeKeypad8, key.CodeKeypad9,
	}
	functionCodes = [...]key.Code{
		key.CodeF1, key.CodeF2, key.CodeF3, key.CodeF4, key.CodeF5, key.CodeF6,
		key.CodeF7, key.CodeF8, key.CodeF9, key.CodeF10, key.CodeF11, key.CodeF12,
		key.CodeF13, key.CodeF14, key.CodeF15, key.CodeF16, key.CodeF17, key.CodeF18,
		key.CodeF19, key.CodeF20, key.CodeF21, key.CodeF22, key.CodeF23, key.CodeF24,
	}
)

func keyCode(k glfw.Key) key.Code {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.CodeA + key.Code(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return digitCodes[k-glfw.Key0]
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return keypadCodes[k-glfw.KeyKP0]
	case k >= glfw.KeyF1 && k <= glfw.KeyF24:
		return functionCodes[k-glfw.KeyF1]
	}
	if c, ok := keyCodes[k]; ok {
		return c
	}
	return key.CodeUnknown
}

func modifiers(m glfw.ModifierKey) key.Modifiers {
	var out key.Modifiers
	if m&glfw.ModShift != 0 {
		out |= key.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= key.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= key.ModMeta
	}
	return out
}

func mouseButton(b glfw.MouseButton) mouse.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return mouse.ButtonLeft
	case glfw.MouseButtonMiddle:
		return mouse.ButtonMiddle
	case glfw.MouseButtonRight:
		return mouse.ButtonRight
	}
	return mouse.ButtonNone
}

// scrollButtons returns one wheel step per scroll axis that moved.
func scrollButtons(xoff, yoff float64) []mouse.Button {
	var out []mouse.Button
	switch {
	case yoff > 0:
		out = append(out, mouse.ButtonWheelUp)
	case yoff < 0:
		out = append(out, mouse.ButtonWheelDown)
	}
	switch {
	case xoff > 0:
		out = append(out, mouse.ButtonWheelRight)
	case xoff < 0:
		out = append(out, mouse.ButtonWheelLeft)
	}
	return out
}

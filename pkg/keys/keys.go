// Package keys classifies browser key codes.
package keys

// Key codes that NumericsOnly always lets through.
const (
	Backspace  = 8
	Tab        = 9
	Space      = 32
	End        = 35
	Home       = 36
	ArrowLeft  = 37
	ArrowUp    = 38
	ArrowRight = 39
	ArrowDown  = 40
	Delete     = 46
)

// Digit key code ranges: top row and numeric keypad.
const (
	Digit0  = 48
	Digit9  = 57
	Numpad0 = 96
	Numpad9 = 105
)

// IsNavigation reports whether code moves the caret or deletes text.
func IsNavigation(code int) bool {
	switch code {
	case Backspace, Tab, Delete, End, Home, ArrowLeft, ArrowUp, ArrowRight, ArrowDown:
		return true
	}
	return false
}

// IsDigit reports whether code is a digit on the top row or the keypad.
func IsDigit(code int) bool {
	return (code >= Digit0 && code <= Digit9) || (code >= Numpad0 && code <= Numpad9)
}

// NumericsOnly reports whether a key press should be accepted by a numeric
// input: digits and navigation keys pass, and so does space when allowSpaces
// is set.
func NumericsOnly(code int, allowSpaces bool) bool {
	if IsNavigation(code) || (allowSpaces && code == Space) {
		return true
	}
	return IsDigit(code)
}

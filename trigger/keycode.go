package trigger

// KeyCode identifies a virtual (layout-mapped) key reported by the host.
// The zero value KeyNone means no virtual key code is available.
type KeyCode uint16

// Virtual key codes.
const (
	KeyNone KeyCode = iota

	// Number row
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Escape and function keys
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Control keys
	KeySnapshot
	KeyScroll
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp

	// Arrow keys
	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	// Editing keys
	KeyBack
	KeyReturn
	KeySpace

	// Compose and numpad
	KeyCompose
	KeyCaret
	KeyNumlock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	// Punctuation, modifiers, media, web and platform keys
	KeyAbntC1
	KeyAbntC2
	KeyAdd
	KeyApostrophe
	KeyApps
	KeyAt
	KeyAx
	KeyBackslash
	KeyCalculator
	KeyCapital
	KeyColon
	KeyComma
	KeyConvert
	KeyDecimal
	KeyDivide
	KeyEquals
	KeyGrave
	KeyKana
	KeyKanji
	KeyLAlt
	KeyLBracket
	KeyLControl
	KeyLShift
	KeyLWin
	KeyMail
	KeyMediaSelect
	KeyMediaStop
	KeyMinus
	KeyMultiply
	KeyMute
	KeyMyComputer
	KeyNavigateForward
	KeyNavigateBackward
	KeyNextTrack
	KeyNoConvert
	KeyNumpadComma
	KeyNumpadEnter
	KeyNumpadEquals
	KeyOEM102
	KeyPeriod
	KeyPlayPause
	KeyPower
	KeyPrevTrack
	KeyRAlt
	KeyRBracket
	KeyRControl
	KeyRShift
	KeyRWin
	KeySemicolon
	KeySlash
	KeySleep
	KeyStop
	KeySubtract
	KeySysrq
	KeyTab
	KeyUnderline
	KeyUnlabeled
	KeyVolumeDown
	KeyVolumeUp
	KeyWake
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop
	KeyYen
	KeyCopy
	KeyPaste
	KeyCut
)


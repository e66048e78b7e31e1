package trigger

import (
	"sort"
	"strconv"
)

// keyNames maps virtual key codes to the names used in binding documents.
var keyNames = map[KeyCode]string{
	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyEscape: "Escape",

	// Function keys
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeySnapshot:         "Snapshot",
	KeyScroll:           "Scroll",
	KeyPause:            "Pause",
	KeyInsert:           "Insert",
	KeyHome:             "Home",
	KeyDelete:           "Delete",
	KeyEnd:              "End",
	KeyPageDown:         "PageDown",
	KeyPageUp:           "PageUp",
	KeyLeft:             "Left",
	KeyUp:               "Up",
	KeyRight:            "Right",
	KeyDown:             "Down",
	KeyBack:             "Back",
	KeyReturn:           "Return",
	KeySpace:            "Space",
	KeyCompose:          "Compose",
	KeyCaret:            "Caret",
	KeyNumlock:          "Numlock",
	KeyNumpad0:          "Numpad0",
	KeyNumpad1:          "Numpad1",
	KeyNumpad2:          "Numpad2",
	KeyNumpad3:          "Numpad3",
	KeyNumpad4:          "Numpad4",
	KeyNumpad5:          "Numpad5",
	KeyNumpad6:          "Numpad6",
	KeyNumpad7:          "Numpad7",
	KeyNumpad8:          "Numpad8",
	KeyNumpad9:          "Numpad9",
	KeyAbntC1:           "AbntC1",
	KeyAbntC2:           "AbntC2",
	KeyAdd:              "Add",
	KeyApostrophe:       "Apostrophe",
	KeyApps:             "Apps",
	KeyAt:               "At",
	KeyAx:               "Ax",
	KeyBackslash:        "Backslash",
	KeyCalculator:       "Calculator",
	KeyCapital:          "Capital",
	KeyColon:            "Colon",
	KeyComma:            "Comma",
	KeyConvert:          "Convert",
	KeyDecimal:          "Decimal",
	KeyDivide:           "Divide",
	KeyEquals:           "Equals",
	KeyGrave:            "Grave",
	KeyKana:             "Kana",
	KeyKanji:            "Kanji",
	KeyLAlt:             "LAlt",
	KeyLBracket:         "LBracket",
	KeyLControl:         "LControl",
	KeyLShift:           "LShift",
	KeyLWin:             "LWin",
	KeyMail:             "Mail",
	KeyMediaSelect:      "MediaSelect",
	KeyMediaStop:        "MediaStop",
	KeyMinus:            "Minus",
	KeyMultiply:         "Multiply",
	KeyMute:             "Mute",
	KeyMyComputer:       "MyComputer",
	KeyNavigateForward:  "NavigateForward",
	KeyNavigateBackward: "NavigateBackward",
	KeyNextTrack:        "NextTrack",
	KeyNoConvert:        "NoConvert",
	KeyNumpadComma:      "NumpadComma",
	KeyNumpadEnter:      "NumpadEnter",
	KeyNumpadEquals:     "NumpadEquals",
	KeyOEM102:           "OEM102",
	KeyPeriod:           "Period",
	KeyPlayPause:        "PlayPause",
	KeyPower:            "Power",
	KeyPrevTrack:        "PrevTrack",
	KeyRAlt:             "RAlt",
	KeyRBracket:         "RBracket",
	KeyRControl:         "RControl",
	KeyRShift:           "RShift",
	KeyRWin:             "RWin",
	KeySemicolon:        "Semicolon",
	KeySlash:            "Slash",
	KeySleep:            "Sleep",
	KeyStop:             "Stop",
	KeySubtract:         "Subtract",
	KeySysrq:            "Sysrq",
	KeyTab:              "Tab",
	KeyUnderline:        "Underline",
	KeyUnlabeled:        "Unlabeled",
	KeyVolumeDown:       "VolumeDown",
	KeyVolumeUp:         "VolumeUp",
	KeyWake:             "Wake",
	KeyWebBack:          "WebBack",
	KeyWebFavorites:     "WebFavorites",
	KeyWebForward:       "WebForward",
	KeyWebHome:          "WebHome",
	KeyWebRefresh:       "WebRefresh",
	KeyWebSearch:        "WebSearch",
	KeyWebStop:          "WebStop",
	KeyYen:              "Yen",
	KeyCopy:             "Copy",
	KeyPaste:            "Paste",
	KeyCut:              "Cut",
}

var keysByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the binding-document name of the key, or "KeyCode(n)" for
// codes outside the named-key table.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "KeyCode(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is part of the named-key table.
func (k KeyCode) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

// ParseKeyCode looks up a key by its exact (case-sensitive) name.
func ParseKeyCode(name string) (KeyCode, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// KeyNames returns every named key, sorted.
func KeyNames() []string {
	out := make([]string, 0, len(keysByName))
	for name := range keysByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

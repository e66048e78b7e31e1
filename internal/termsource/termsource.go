// Package termsource turns terminal events into raw input events.
//
// Terminals report key presses only, so every key becomes a press followed
// by a release. There are no scan codes either: the tcell key value (or the
// rune for printable keys) stands in for one.
package termsource

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

// Delivery is one raw event together with its source device.
type Delivery struct {
	Device input.DeviceID
	Event  input.Event
}

// Source keeps the mouse state needed to turn tcell's absolute snapshots into
// edges and deltas.
type Source struct {
	keyboard input.DeviceID
	mouse    input.DeviceID

	buttons tcell.ButtonMask
	x, y    int
	seen    bool
}

// New creates a Source reporting keys on keyboard and the pointer on mouse.
func New(keyboard, mouse input.DeviceID) *Source {
	return &Source{keyboard: keyboard, mouse: mouse}
}

// buttonIDs maps tcell buttons to host button numbers (1 left, 2 middle,
// 3 right).
var buttonIDs = []struct {
	mask tcell.ButtonMask
	id   uint32
}{
	{tcell.Button1, 1},
	{tcell.Button3, 2},
	{tcell.Button2, 3},
	{tcell.Button4, 4},
	{tcell.Button5, 5},
	{tcell.Button6, 6},
	{tcell.Button7, 7},
	{tcell.Button8, 8},
}

// Convert translates ev. Events with no input meaning yield nil.
func (s *Source) Convert(ev tcell.Event) []Delivery {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return s.key(e)
	case *tcell.EventMouse:
		return s.mouseEvent(e)
	}
	return nil
}

// Reset forgets pointer state, as if the mouse was unplugged. It returns the
// releases for buttons still held followed by a removal.
func (s *Source) Reset() []Delivery {
	var out []Delivery
	for _, b := range buttonIDs {
		if s.buttons&b.mask != 0 {
			out = append(out, Delivery{s.mouse, input.Button{Button: b.id, State: input.Released}})
		}
	}
	out = append(out, Delivery{s.mouse, input.Removed{}})
	s.buttons, s.seen = 0, false
	return out
}

func (s *Source) key(e *tcell.EventKey) []Delivery {
	sc := uint32(e.Key())
	if e.Key() == tcell.KeyRune {
		sc = uint32(e.Rune())
	}
	vk := KeyCode(e)
	return []Delivery{
		{s.keyboard, input.Key{ScanCode: sc, VirtualKey: vk, State: input.Pressed}},
		{s.keyboard, input.Key{ScanCode: sc, VirtualKey: vk, State: input.Released}},
	}
}

func (s *Source) mouseEvent(e *tcell.EventMouse) []Delivery {
	var out []Delivery
	x, y := e.Position()
	if s.seen && (x != s.x || y != s.y) {
		out = append(out, Delivery{s.mouse, input.MouseMotion{DX: float64(x - s.x), DY: float64(y - s.y)}})
	}
	s.x, s.y, s.seen = x, y, true

	mask := e.Buttons()
	for _, b := range buttonIDs {
		was, is := s.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			out = append(out, Delivery{s.mouse, input.Button{Button: b.id, State: input.Pressed}})
		case was && !is:
			out = append(out, Delivery{s.mouse, input.Button{Button: b.id, State: input.Released}})
		}
	}
	s.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	// Wheel bits are one-shot.
	if mask&tcell.WheelUp != 0 {
		out = append(out, Delivery{s.mouse, input.MouseWheel{Delta: input.Lines(0, -1)}})
	}
	if mask&tcell.WheelDown != 0 {
		out = append(out, Delivery{s.mouse, input.MouseWheel{Delta: input.Lines(0, 1)}})
	}
	if mask&tcell.WheelLeft != 0 {
		out = append(out, Delivery{s.mouse, input.MouseWheel{Delta: input.Lines(-1, 0)}})
	}
	if mask&tcell.WheelRight != 0 {
		out = append(out, Delivery{s.mouse, input.MouseWheel{Delta: input.Lines(1, 0)}})
	}
	return out
}

var namedKeys = map[tcell.Key]trigger.KeyCode{
	tcell.KeyUp:         trigger.KeyUp,
	tcell.KeyDown:       trigger.KeyDown,
	tcell.KeyLeft:       trigger.KeyLeft,
	tcell.KeyRight:      trigger.KeyRight,
	tcell.KeyPgUp:       trigger.KeyPageUp,
	tcell.KeyPgDn:       trigger.KeyPageDown,
	tcell.KeyHome:       trigger.KeyHome,
	tcell.KeyEnd:        trigger.KeyEnd,
	tcell.KeyInsert:     trigger.KeyInsert,
	tcell.KeyDelete:     trigger.KeyDelete,
	tcell.KeyPause:      trigger.KeyPause,
	tcell.KeyPrint:      trigger.KeySnapshot,
	tcell.KeyMenu:       trigger.KeyApps,
	tcell.KeyCapsLock:   trigger.KeyCapital,
	tcell.KeyScrollLock: trigger.KeyScroll,
	tcell.KeyNumLock:    trigger.KeyNumlock,
	tcell.KeyEnter:      trigger.KeyReturn,
	tcell.KeyTab:        trigger.KeyTab,
	tcell.KeyBacktab:    trigger.KeyTab,
	tcell.KeyEsc:        trigger.KeyEscape,
	tcell.KeyBackspace:  trigger.KeyBack,
	tcell.KeyBackspace2: trigger.KeyBack,
}

var runeKeys = map[rune]trigger.KeyCode{
	' ':  trigger.KeySpace,
	',':  trigger.KeyComma,
	'.':  trigger.KeyPeriod,
	'/':  trigger.KeySlash,
	';':  trigger.KeySemicolon,
	':':  trigger.KeyColon,
	'\'': trigger.KeyApostrophe,
	'[':  trigger.KeyLBracket,
	']':  trigger.KeyRBracket,
	'\\': trigger.KeyBackslash,
	'-':  trigger.KeyMinus,
	'=':  trigger.KeyEquals,
	'`':  trigger.KeyGrave,
	'@':  trigger.KeyAt,
	'^':  trigger.KeyCaret,
	'_':  trigger.KeyUnderline,
	'+':  trigger.KeyAdd,
	'*':  trigger.KeyMultiply,
}

// KeyCode maps a tcell key event to a virtual key. Unmapped keys return
// trigger.KeyNone.
func KeyCode(e *tcell.EventKey) trigger.KeyCode {
	k := e.Key()
	if k == tcell.KeyRune {
		return runeKeyCode(e.Rune())
	}
	if vk, ok := namedKeys[k]; ok {
		return vk
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		return trigger.KeyF1 + trigger.KeyCode(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return trigger.KeyA + trigger.KeyCode(k-tcell.KeyCtrlA)
	case k >= tcell.KeySOH && k <= tcell.KeySUB:
		// Raw control characters; tab, enter and backspace are named above.
		return trigger.KeyA + trigger.KeyCode(k-tcell.KeySOH)
	}
	return trigger.KeyNone
}

func runeKeyCode(r rune) trigger.KeyCode {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		return trigger.KeyA + trigger.KeyCode(r-'a')
	case r == '0':
		return trigger.Key0
	case r >= '1' && r <= '9':
		return trigger.Key1 + trigger.KeyCode(r-'1')
	}
	return runeKeys[r]
}

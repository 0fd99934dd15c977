// Package virtualkeyboard binds zwp_virtual_keyboard_manager_v1 and
// zwp_virtual_keyboard_v1 (virtual-keyboard-unstable-v1). The bindings in
// virtualkeyboard_generated.go follow the shape cmd/wlgen emits for the
// upstream protocol XML but are not its verbatim output (for instance, the
// keymap_format enum is named KeymapFormat here).
package virtualkeyboard

// Key identifies a keyboard key by its Linux evdev keycode (the numbering
// the kernel's input-event-codes.h assigns and zwp_virtual_keyboard_v1.key
// expects), not by scancode or keysym. Named constants cover the keys a
// typical compositor client needs to synthesize; anything else can be sent
// as a raw Key value.
type Key uint32

const (
	KeyEsc       Key = 1
	Key1         Key = 2
	Key2         Key = 3
	Key3         Key = 4
	Key4         Key = 5
	Key5         Key = 6
	Key6         Key = 7
	Key7         Key = 8
	Key8         Key = 9
	Key9         Key = 10
	Key0         Key = 11
	KeyMinus     Key = 12
	KeyEqual     Key = 13
	KeyBackspace Key = 14
	KeyTab       Key = 15

	KeyQ            Key = 16
	KeyW            Key = 17
	KeyE            Key = 18
	KeyR            Key = 19
	KeyT            Key = 20
	KeyY            Key = 21
	KeyU            Key = 22
	KeyI            Key = 23
	KeyO            Key = 24
	KeyP            Key = 25
	KeyLeftBracket  Key = 26
	KeyRightBracket Key = 27
	KeyEnter        Key = 28
	KeyControlLeft  Key = 29

	KeyA          Key = 30
	KeyS          Key = 31
	KeyD          Key = 32
	KeyF          Key = 33
	KeyG          Key = 34
	KeyH          Key = 35
	KeyJ          Key = 36
	KeyK          Key = 37
	KeyL          Key = 38
	KeySemicolon  Key = 39
	KeyApostrophe Key = 40
	KeyGrave      Key = 41
	KeyShiftLeft  Key = 42
	KeyBackslash  Key = 43

	KeyZ          Key = 44
	KeyX          Key = 45
	KeyC          Key = 46
	KeyV          Key = 47
	KeyB          Key = 48
	KeyN          Key = 49
	KeyM          Key = 50
	KeyComma      Key = 51
	KeyPeriod     Key = 52
	KeySlash      Key = 53
	KeyShiftRight Key = 54
	KeyAltLeft    Key = 56
	KeySpace      Key = 57
	KeyCapsLock   Key = 58

	KeyF1  Key = 59
	KeyF2  Key = 60
	KeyF3  Key = 61
	KeyF4  Key = 62
	KeyF5  Key = 63
	KeyF6  Key = 64
	KeyF7  Key = 65
	KeyF8  Key = 66
	KeyF9  Key = 67
	KeyF10 Key = 68
	KeyF11 Key = 87
	KeyF12 Key = 88

	KeyNumLock    Key = 69
	KeyScrollLock Key = 70

	KeyControlRight Key = 97
	KeyAltRight     Key = 100

	KeyHome     Key = 102
	KeyUp       Key = 103
	KeyPageUp   Key = 104
	KeyLeft     Key = 105
	KeyRight    Key = 106
	KeyEnd      Key = 107
	KeyDown     Key = 108
	KeyPageDown Key = 109
	KeyInsert   Key = 110
	KeyDelete   Key = 111

	KeyPause Key = 119

	KeySuperLeft  Key = 125
	KeySuperRight Key = 126
)

// KeyState is the argument zwp_virtual_keyboard_v1.key expects for its
// state argument: pressed (1) or released (0).
type KeyState uint32

const (
	KeyStateReleased KeyState = 0
	KeyStatePressed  KeyState = 1
)

// Package virtualpointer binds zwlr_virtual_pointer_manager_v1 and
// zwlr_virtual_pointer_v1 (wlr-virtual-pointer-unstable-v1). The bindings in
// virtualpointer_generated.go follow the shape cmd/wlgen emits for the
// upstream protocol XML but are not its verbatim output (for instance,
// CreateVirtualPointer creates its object at version 2, where cmd/wlgen
// always uses version 1).
package virtualpointer

// Button identifies a pointer button by its Linux evdev code (the BTN_*
// values from input-event-codes.h that zwlr_virtual_pointer_v1.button
// expects), not a logical button index.
type Button uint32

const (
	ButtonLeft    Button = 0x110
	ButtonRight   Button = 0x111
	ButtonMiddle  Button = 0x112
	ButtonSide    Button = 0x113
	ButtonExtra   Button = 0x114
	ButtonForward Button = 0x115
	ButtonBack    Button = 0x116
)

// ButtonState is the argument zwlr_virtual_pointer_v1.button expects for
// its state argument: pressed (1) or released (0).
type ButtonState uint32

const (
	ButtonStateReleased ButtonState = 0
	ButtonStatePressed  ButtonState = 1
)

// AxisSource identifies the scroll input source for zwlr_virtual_pointer_v1.axis_source.
type AxisSource uint32

const (
	AxisSourceWheel      AxisSource = 0
	AxisSourceFinger     AxisSource = 1
	AxisSourceContinuous AxisSource = 2
	AxisSourceWheelTilt  AxisSource = 3
)

// Axis selects the scroll axis for zwlr_virtual_pointer_v1.axis.
type Axis uint32

const (
	AxisVerticalScroll   Axis = 0
	AxisHorizontalScroll Axis = 1
)

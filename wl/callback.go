package wl

import "github.com/Chugach-UI/denali/wire"

// wl_callback event opcodes.
const opCallbackEventDone wire.Opcode = 0

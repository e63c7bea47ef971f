// Package led drives the three keyboard indicator LEDs as a marquee: one lit
// indicator stepping left or right each tick.
package led

import "fmt"

// Pattern is the indicator bit mask understood by KDSETLED.
type Pattern uint8

const (
	Off    Pattern = 0x00
	Scroll Pattern = 0x01
	Num    Pattern = 0x02
	Caps   Pattern = 0x04
)

// lastIndicator is the highest indicator bit. Hardware with a fourth LED
// would need this boundary moved.
const lastIndicator = Caps

// indicators lists the LEDs from the most significant bit down, which is
// also their left-to-right order on screen.
var indicators = []Pattern{Caps, Num, Scroll}

func (p Pattern) String() string {
	switch p {
	case Off:
		return "off"
	case Scroll:
		return "scroll"
	case Num:
		return "num"
	case Caps:
		return "caps"
	default:
		return fmt.Sprintf("0x%02x", uint8(p))
	}
}

// Direction is the way the lit indicator moves.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Command is a decoded key press.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Decode maps a key to a command. Letters are case-insensitive and anything
// unrecognised is CommandNone.
func Decode(key byte) Command {
	switch key {
	case 'L', 'l':
		return CommandLeft
	case 'R', 'r':
		return CommandRight
	case 'Q', 'q':
		return CommandQuit
	default:
		return CommandNone
	}
}

package led

// Marquee holds the lit indicator and the direction it travels.
type Marquee struct {
	pattern   Pattern
	direction Direction
}

// NewMarquee starts at Scroll Lock moving left.
func NewMarquee() *Marquee {
	return &Marquee{pattern: Scroll, direction: Left}
}

func (m *Marquee) Pattern() Pattern {
	return m.pattern
}

func (m *Marquee) Direction() Direction {
	return m.direction
}

// Apply updates the direction for left/right commands and reports whether
// the command asks to quit. The position is never reset.
func (m *Marquee) Apply(cmd Command) (quit bool) {
	switch cmd {
	case CommandLeft:
		m.direction = Left
	case CommandRight:
		m.direction = Right
	case CommandQuit:
		return true
	}
	return false
}

// Step advances one tick and returns the new pattern.
func (m *Marquee) Step() Pattern {
	if m.direction == Left {
		m.pattern <<= 1
		if m.pattern > lastIndicator {
			m.pattern = Scroll
		}
	} else {
		m.pattern >>= 1
		if m.pattern == Off {
			m.pattern = lastIndicator
		}
	}
	return m.pattern
}

// Off switches every indicator off. Step must not be called afterwards.
func (m *Marquee) Off() {
	m.pattern = Off
}

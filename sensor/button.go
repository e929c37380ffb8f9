// Package sensor is the device side of the touch strip: the cabinet's button
// numbering, a concurrency-safe button state fed by a touchstrip.Panel, and
// the serial link that reports that state to the game.
package sensor

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/touchstrip"
)

// NumButtons is the number of touch buttons the device reports.
const NumButtons = 34

// Button values in the device's bit order.
const (
	A1 touchstrip.ButtonValue = iota
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	C1
	C2
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	E1
	E2
	E3
	E4
	E5
	E6
	E7
	E8
)

// groups lists each button group's letter, first value and size.
var groups = []struct {
	letter byte
	first  touchstrip.ButtonValue
	size   int
}{
	{'A', A1, 8},
	{'B', B1, 8},
	{'C', C1, 2},
	{'D', D1, 8},
	{'E', E1, 8},
}

// ButtonName returns the printed name of b, such as "A1" or "C2".
func ButtonName(b touchstrip.ButtonValue) string {
	for _, g := range groups {
		if b >= g.first && int(b-g.first) < g.size {
			return string(g.letter) + strconv.Itoa(int(b-g.first)+1)
		}
	}
	return fmt.Sprintf("?%d", b)
}

// ParseButton returns the button with the given printed name.
func ParseButton(name string) (touchstrip.ButtonValue, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("parse button %q: too short", name)
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, fmt.Errorf("parse button %q: %w", name, err)
	}
	for _, g := range groups {
		if g.letter != name[0] {
			continue
		}
		if n < 1 || n > g.size {
			return 0, fmt.Errorf("parse button %q: index out of range 1-%d", name, g.size)
		}
		return g.first + touchstrip.ButtonValue(n-1), nil
	}
	return 0, fmt.Errorf("parse button %q: unknown group %q", name, name[0])
}

// RingKeys maps the outer A buttons to the player-one ring button keys.
func RingKeys() map[touchstrip.ButtonValue]string {
	return map[touchstrip.ButtonValue]string{
		A1: "w", A2: "e", A3: "d", A4: "c",
		A5: "x", A6: "z", A7: "a", A8: "q",
	}
}

// Package hostenv models the narrow surface the host environment provides:
// a deep-link start parameter delivered at launch, the viewer locale, and a
// haptic-pulse capability.
package hostenv

import (
	"fmt"
	"io"
	"os"
)

// Intensity mirrors the host bridge pulse levels.
type Intensity string

const (
	Light  Intensity = "light"
	Medium Intensity = "medium"
	Heavy  Intensity = "heavy"
)

type Haptics interface {
	Impact(style Intensity)
}

// TerminalHaptics approximates a pulse with the terminal bell.
type TerminalHaptics struct {
	W io.Writer
}

func (t TerminalHaptics) Impact(Intensity) {
	w := t.W
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "\a")
}

// NoopHaptics is used when the surface has no feedback channel (plain CLI
// output, tests).
type NoopHaptics struct{}

func (NoopHaptics) Impact(Intensity) {}

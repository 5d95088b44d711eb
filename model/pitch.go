package model

import "fmt"

// Pitch is an absolute pitch as a midi note number (60 = middle C).
type Pitch uint8

func (p Pitch) Semitones() int {
	return int(p)
}

// Class is the octave-invariant note identity (value mod 12).
func (p Pitch) Class() Pitch {
	return p % 12
}

// Name renders the pitch for display, e.g. 60 -> "C4". Only used by
// output formatting, never by the engine itself.
func (p Pitch) Name() string {
	names := [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	octave := int(p)/12 - 1
	return fmt.Sprintf("%v%v", names[p%12], octave)
}

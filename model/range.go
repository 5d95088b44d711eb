package model

// VoiceRange is an inclusive absolute pitch range for one voice.
type VoiceRange struct {
	Min Pitch
	Max Pitch
}

func (r VoiceRange) Contains(p Pitch) bool {
	return p >= r.Min && p <= r.Max
}

// Middle is the integer average of the endpoints. The scorer measures
// comfort as distance from here.
func (r VoiceRange) Middle() Pitch {
	return (r.Min + r.Max) / 2
}

// Ranges carries the per-voice ranges through generation and scoring so
// nothing depends on package-level state.
type Ranges struct {
	Soprano VoiceRange
	Alto    VoiceRange
	Tenor   VoiceRange
	Bass    VoiceRange
}

// DefaultRanges are the usual SATB choral ranges: soprano C4-G5, alto
// G3-C5, tenor C3-G4, bass E2-C4.
func DefaultRanges() Ranges {
	return Ranges{
		Soprano: VoiceRange{Min: 60, Max: 79},
		Alto:    VoiceRange{Min: 55, Max: 72},
		Tenor:   VoiceRange{Min: 48, Max: 67},
		Bass:    VoiceRange{Min: 40, Max: 60},
	}
}

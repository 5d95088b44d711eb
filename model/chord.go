package model

// ChordSpec is a figured bass symbol with its figures already resolved:
// the sounding bass plus the chord tones the realization must cover.
// Only the pitch classes of Tones matter.
type ChordSpec struct {
	Bass  Pitch   `json:"bass"`
	Tones []Pitch `json:"tones"`
}

type Progression = []ChordSpec

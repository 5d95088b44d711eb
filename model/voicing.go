package model

import "fmt"

// Voicing is one complete four-voice pitch assignment for a single chord.
type Voicing struct {
	Soprano Pitch `json:"soprano"`
	Alto    Pitch `json:"alto"`
	Tenor   Pitch `json:"tenor"`
	Bass    Pitch `json:"bass"`
}

// Voices returns the pitches highest voice first.
func (v Voicing) Voices() [4]Pitch {
	return [4]Pitch{v.Soprano, v.Alto, v.Tenor, v.Bass}
}

func (v Voicing) String() string {
	return fmt.Sprintf("S:%v A:%v T:%v B:%v",
		v.Soprano.Name(), v.Alto.Name(), v.Tenor.Name(), v.Bass.Name())
}

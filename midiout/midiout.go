package midiout

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"continuo/constants"
	"continuo/model"
)

// Build lays the realized progression down on a single track, one block
// chord per voicing, each held for a whole note.
func Build(voicings []model.Voicing) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	for _, v := range voicings {
		for _, p := range v.Voices() {
			track.Add(0, midi.NoteOn(constants.RenderChannel, uint8(p), constants.RenderVelocity))
		}
		delta := uint32(constants.ChordTicks)
		for _, p := range v.Voices() {
			track.Add(delta, midi.NoteOff(constants.RenderChannel, uint8(p)))
			delta = 0
		}
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)

	return &res
}

// WriteFile renders the voicings and writes them as a standard midi file.
func WriteFile(path string, voicings []model.Voicing) error {
	s := Build(voicings)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %v", err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("could not write midi file: %v", err)
	}
	return nil
}

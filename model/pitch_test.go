package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", Pitch(60).Name())
	assert.Equal("A4", Pitch(69).Name())
	assert.Equal("F#2", Pitch(42).Name())
	assert.Equal("B3", Pitch(59).Name())
}

func TestPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Pitch(0), Pitch(60).Class())
	assert.Equal(Pitch(7), Pitch(55).Class())
	assert.Equal(Pitch(11), Pitch(59).Class())
}

func TestVoicingString(t *testing.T) {
	v := Voicing{Soprano: 72, Alto: 67, Tenor: 64, Bass: 48}
	assert.Equal(t, "S:C5 A:G4 T:E4 B:C3", v.String())
}

func TestDefaultRangeMiddles(t *testing.T) {
	ranges := DefaultRanges()

	assert := assert.New(t)
	assert.Equal(Pitch(69), ranges.Soprano.Middle())
	assert.Equal(Pitch(63), ranges.Alto.Middle())
	assert.Equal(Pitch(57), ranges.Tenor.Middle())
	assert.Equal(Pitch(50), ranges.Bass.Middle())
}

func TestVoiceRangeContains(t *testing.T) {
	r := VoiceRange{Min: 60, Max: 79}

	assert := assert.New(t)
	assert.True(r.Contains(60))
	assert.True(r.Contains(79))
	assert.False(r.Contains(59))
	assert.False(r.Contains(80))
}

package realize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"continuo/model"
	"continuo/score"
)

func cfgcProgression() model.Progression {
	return model.Progression{
		{Bass: 48, Tones: []model.Pitch{48, 52, 55}},
		{Bass: 53, Tones: []model.Pitch{53, 57, 60}},
		{Bass: 55, Tones: []model.Pitch{55, 59, 62}},
		{Bass: 48, Tones: []model.Pitch{48, 52, 55}},
	}
}

func assertWellFormed(t *testing.T, v model.Voicing, spec model.ChordSpec, ranges model.Ranges) {
	t.Helper()
	assert := assert.New(t)

	assert.GreaterOrEqual(v.Soprano, v.Alto)
	assert.GreaterOrEqual(v.Alto, v.Tenor)
	assert.GreaterOrEqual(v.Tenor, v.Bass)
	assert.LessOrEqual(v.Soprano.Semitones()-v.Alto.Semitones(), 12)
	assert.LessOrEqual(v.Alto.Semitones()-v.Tenor.Semitones(), 12)

	assert.True(ranges.Soprano.Contains(v.Soprano))
	assert.True(ranges.Alto.Contains(v.Alto))
	assert.True(ranges.Tenor.Contains(v.Tenor))
	assert.True(ranges.Bass.Contains(v.Bass))
	assert.Equal(spec.Bass, v.Bass)

	classes := make(map[model.Pitch]bool)
	for _, p := range v.Voices() {
		classes[p.Class()] = true
	}
	for _, tone := range spec.Tones {
		assert.True(classes[tone.Class()], "missing chord tone class %v", tone.Class())
	}
}

func TestRealizesWholeProgression(t *testing.T) {
	prog := cfgcProgression()
	ranges := model.DefaultRanges()

	voicings, err := Realize(prog, ranges)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(voicings, len(prog))
	for i, v := range voicings {
		assertWellFormed(t, v, prog[i], ranges)
	}
	for i := 1; i < len(voicings); i++ {
		assert.False(score.HasParallels(voicings[i-1], voicings[i]),
			"parallel motion between chords %v and %v", i-1, i)
	}
}

func TestRealizeIsDeterministic(t *testing.T) {
	prog := cfgcProgression()
	ranges := model.DefaultRanges()

	first, err1 := Realize(prog, ranges)
	second, err2 := Realize(prog, ranges)

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestRealizeFailsFastOnImpossibleChord(t *testing.T) {
	prog := model.Progression{
		{Bass: 48, Tones: []model.Pitch{48, 52, 55}},
		// five distinct required classes can never fit in four voices
		{Bass: 40, Tones: []model.Pitch{48, 49, 50, 51, 53}},
		{Bass: 48, Tones: []model.Pitch{48, 52, 55}},
	}

	voicings, err := Realize(prog, model.DefaultRanges())

	assert := assert.New(t)
	assert.Nil(voicings)
	assert.Error(err)

	var nvv NoValidVoicingError
	assert.True(errors.As(err, &nvv))
	assert.Equal(1, nvv.Index)
	assert.Equal("no valid voicings found for chord 1", err.Error())
}

func TestSingleChordRealization(t *testing.T) {
	prog := model.Progression{{Bass: 48, Tones: []model.Pitch{48, 52, 55}}}
	ranges := model.DefaultRanges()

	voicings, err := Realize(prog, ranges)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(voicings, 1)
	assertWellFormed(t, voicings[0], prog[0], ranges)
}

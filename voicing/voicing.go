package voicing

import (
	"continuo/model"
	"continuo/util"
)

// notesInRange places every chord tone's pitch class at every octave
// inside the voice's range: lift the class until it enters the range,
// then keep adding octaves up to the max.
func notesInRange(tones []model.Pitch, r model.VoiceRange) []model.Pitch {
	var notes []model.Pitch
	for _, tone := range tones {
		note := tone.Class()
		for note < r.Min {
			note += 12
		}
		for note <= r.Max {
			notes = append(notes, note)
			note += 12
		}
	}
	return util.SortDedup(notes)
}

func coversTones(v model.Voicing, tones []model.Pitch) bool {
	classes := make(map[model.Pitch]bool)
	for _, p := range v.Voices() {
		classes[p.Class()] = true
	}
	for _, tone := range tones {
		if !classes[tone.Class()] {
			return false
		}
	}
	return true
}

func isValid(v model.Voicing, tones []model.Pitch) bool {
	// voices must not cross
	if v.Soprano < v.Alto || v.Alto < v.Tenor || v.Tenor < v.Bass {
		return false
	}
	// upper voices no more than an octave apart
	if v.Soprano-v.Alto > 12 || v.Alto-v.Tenor > 12 {
		return false
	}
	// all four voices together must sound every chord tone
	return coversTones(v, tones)
}

// Generate enumerates every structurally valid voicing of the chord. The
// bass is fixed to the chord's bass; soprano, alto and tenor run over every
// placement of the chord tones inside their ranges, soprano outermost. The
// realizer's tie-break relies on this iteration order, so it never changes.
func Generate(spec model.ChordSpec, ranges model.Ranges) []model.Voicing {
	sopranos := notesInRange(spec.Tones, ranges.Soprano)
	altos := notesInRange(spec.Tones, ranges.Alto)
	tenors := notesInRange(spec.Tones, ranges.Tenor)

	var res []model.Voicing
	for _, s := range sopranos {
		for _, a := range altos {
			for _, t := range tenors {
				v := model.Voicing{Soprano: s, Alto: a, Tenor: t, Bass: spec.Bass}
				if isValid(v, spec.Tones) {
					res = append(res, v)
				}
			}
		}
	}
	return res
}

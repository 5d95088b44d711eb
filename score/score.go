package score

import (
	"continuo/model"
	"continuo/util"
)

// Score rates a candidate voicing; higher is better. The static terms
// always apply, the motion terms only when there is a previous voicing to
// move from. Root is the chord's bass, so doubling rewards the bass class
// even on inverted chords.
func Score(candidate model.Voicing, prev *model.Voicing, root model.Pitch, ranges model.Ranges) float64 {
	score := doublingScore(candidate, root)
	score += spacingScore(candidate)
	score += rangeComfortScore(candidate, ranges)

	if prev != nil {
		score += parallelMotionPenalty(*prev, candidate)
		score += voiceMotionScore(*prev, candidate)
		score += contraryMotionBonus(*prev, candidate)
	}

	return score
}

// HasParallels reports whether moving from prev to next commits parallel
// fifths or octaves in any voice pair.
func HasParallels(prev, next model.Voicing) bool {
	return parallelMotionPenalty(prev, next) < 0
}

func doublingScore(v model.Voicing, root model.Pitch) float64 {
	var score float64
	for _, p := range v.Voices() {
		if p.Class() == root.Class() {
			score += 10
		}
	}
	return score
}

func spacingScore(v model.Voicing) float64 {
	var score float64
	sopAltoGap := v.Soprano.Semitones() - v.Alto.Semitones()
	altoTenorGap := v.Alto.Semitones() - v.Tenor.Semitones()

	// anything wider than a fifth between adjacent upper voices costs
	if sopAltoGap > 7 {
		score -= float64(sopAltoGap-7) * 2
	}
	if altoTenorGap > 7 {
		score -= float64(altoTenorGap-7) * 2
	}
	return score
}

func rangeComfortScore(v model.Voicing, ranges model.Ranges) float64 {
	var score float64
	score -= float64(util.Abs(v.Soprano.Semitones()-ranges.Soprano.Middle().Semitones())) * 0.1
	score -= float64(util.Abs(v.Alto.Semitones()-ranges.Alto.Middle().Semitones())) * 0.1
	score -= float64(util.Abs(v.Tenor.Semitones()-ranges.Tenor.Middle().Semitones())) * 0.1
	return score
}

// parallelMotionPenalty disqualifies a candidate that keeps an exact
// perfect fifth (7) or octave (12) between two voices across the change
// while both voices move in the same direction. The first offending pair
// decides; the penalty never compounds.
func parallelMotionPenalty(prev, next model.Voicing) float64 {
	pv := prev.Voices()
	nv := next.Voices()

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			interval1 := util.Abs(pv[i].Semitones() - pv[j].Semitones())
			interval2 := util.Abs(nv[i].Semitones() - nv[j].Semitones())
			if (interval1 == 7 || interval1 == 12) && interval1 == interval2 {
				motion1 := nv[i].Semitones() - pv[i].Semitones()
				motion2 := nv[j].Semitones() - pv[j].Semitones()
				if motion1 != 0 && motion2 != 0 && (motion1 > 0) == (motion2 > 0) {
					return -1000
				}
			}
		}
	}
	return 0
}

// voiceMotionScore prefers common tones and stepwise motion in the upper
// voices. Bass motion is fixed by the progression and not counted.
func voiceMotionScore(prev, next model.Voicing) float64 {
	totalMotion := util.Abs(next.Soprano.Semitones()-prev.Soprano.Semitones()) +
		util.Abs(next.Alto.Semitones()-prev.Alto.Semitones()) +
		util.Abs(next.Tenor.Semitones()-prev.Tenor.Semitones())
	return -0.5 * float64(totalMotion)
}

func contraryMotionBonus(prev, next model.Voicing) float64 {
	sopMotion := next.Soprano.Semitones() - prev.Soprano.Semitones()
	bassMotion := next.Bass.Semitones() - prev.Bass.Semitones()
	if sopMotion != 0 && bassMotion != 0 && (sopMotion > 0) != (bassMotion > 0) {
		return 5
	}
	return 0
}

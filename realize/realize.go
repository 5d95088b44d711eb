package realize

import (
	"fmt"

	"continuo/model"
	"continuo/score"
	"continuo/voicing"
)

// NoValidVoicingError means no structurally valid voicing exists for the
// chord at Index under the given ranges. The whole realization is
// abandoned: every later chord is scored against its predecessor, so there
// is nothing sensible to carry forward past a gap.
type NoValidVoicingError struct {
	Index int
}

func (e NoValidVoicingError) Error() string {
	return fmt.Sprintf("no valid voicings found for chord %v", e.Index)
}

// Realize picks one voicing per chord, greedily: generate every candidate,
// score each against the previously chosen voicing and keep the first
// maximum in generation order. The result is position-aligned with the
// input and fully deterministic.
func Realize(prog model.Progression, ranges model.Ranges) ([]model.Voicing, error) {
	res := make([]model.Voicing, 0, len(prog))
	var prev *model.Voicing

	for i, spec := range prog {
		candidates := voicing.Generate(spec, ranges)
		if len(candidates) == 0 {
			return nil, NoValidVoicingError{Index: i}
		}

		best := candidates[0]
		bestScore := score.Score(best, prev, spec.Bass, ranges)
		for _, candidate := range candidates[1:] {
			if s := score.Score(candidate, prev, spec.Bass, ranges); s > bestScore {
				best = candidate
				bestScore = s
			}
		}

		res = append(res, best)
		prev = &res[len(res)-1]
	}

	return res, nil
}

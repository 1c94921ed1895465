package assessment

import "math"

// ComputeScore returns the weighted readiness score in [0, 100].
//
// Questions without an answer, or whose answer matches none of their
// options, contribute to neither the earned nor the possible total. Only
// single-choice questions are scored; an unset kind counts as single choice. Returns 0 when nothing was scored.
func ComputeScore(questions []Question, answers Answers) int {
	var earned, possible float64

	for _, q := range questions {
		if !q.Scored() {
			continue
		}
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(value)
		if !ok {
			continue
		}
		w := q.EffectiveWeight()
		earned += float64(opt.Score) * w
		possible += MaxOptionScore * w
	}

	if possible <= 0 {
		return 0
	}
	return int(math.Round(100 * earned / possible))
}

// Band describes a readiness score in words. The bands match the score
// distribution used by organization reports.
func Band(score int) string {
	switch {
	case score >= 70:
		return "Well prepared"
	case score >= 40:
		return "Making progress"
	default:
		return "Getting started"
	}
}

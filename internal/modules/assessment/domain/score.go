package domain

type Band string

const (
	BandExcellent      Band = "Excellent"
	BandGood           Band = "Good"
	BandModerate       Band = "Moderate"
	BandNeedsAttention Band = "Needs Attention"
)

// BandFor maps a percentage onto fixed bands with inclusive lower bounds.
func BandFor(percent float64) Band {
	switch {
	case percent >= 80:
		return BandExcellent
	case percent >= 60:
		return BandGood
	case percent >= 40:
		return BandModerate
	default:
		return BandNeedsAttention
	}
}

type CategoryScore struct {
	Category string
	Sum      int
	Max      int
	Percent  float64
	Band     Band
}

// Score sums answers over the declared maxima per category. Categories come
// back in the order they first appear in questions. Unanswered questions still
// count toward the maximum.
func Score(questions []Question, answers map[string]int) []CategoryScore {
	index := map[string]int{}
	var out []CategoryScore
	for _, q := range questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(out)
			index[q.Category] = i
			out = append(out, CategoryScore{Category: q.Category})
		}
		out[i].Sum += answers[q.ID]
		out[i].Max += q.Options.Max
	}
	for i := range out {
		if out[i].Max > 0 {
			out[i].Percent = float64(out[i].Sum) / float64(out[i].Max) * 100
		}
		out[i].Band = BandFor(out[i].Percent)
	}
	return out
}

// Overall is the percentage across every category.
func Overall(scores []CategoryScore) float64 {
	var sum, total int
	for _, s := range scores {
		sum += s.Sum
		total += s.Max
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total) * 100
}

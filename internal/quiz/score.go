package quiz

import (
	"fmt"
	"math"
)

// Scaled-score constants: raw correct/total maps linearly onto the official
// 300-1000 range, pass mark 825.
const (
	ScaledMin    = 300
	ScaledMax    = 1000
	PassingScore = 825
)

type DomainStat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type Report struct {
	Correct int                   `json:"correct"`
	Total   int                   `json:"total"`
	Scaled  int                   `json:"scaled_score"`
	Passed  bool                  `json:"passed"`
	Domains map[string]DomainStat `json:"domain_breakdown"`
}

// Score is pure: no side effects, deterministic for an unmodified set, safe
// to call repeatedly. Unanswered questions count as incorrect.
func Score(questions []Question) (Report, error) {
	if len(questions) == 0 {
		return Report{}, fmt.Errorf("%w: empty question set", ErrInvalidInput)
	}
	r := Report{
		Total:   len(questions),
		Domains: make(map[string]DomainStat),
	}
	for _, q := range questions {
		dom := q.Domain
		if dom == "" {
			dom = GeneralDomain
		}
		st := r.Domains[dom]
		st.Total++
		if q.AnsweredCorrectly() {
			st.Correct++
			r.Correct++
		}
		r.Domains[dom] = st
	}
	r.Scaled = int(math.Round(ScaledMin + float64(r.Correct)/float64(r.Total)*(ScaledMax-ScaledMin)))
	r.Passed = r.Scaled >= PassingScore
	return r, nil
}

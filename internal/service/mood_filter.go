package service

import (
	"fmt"

	"moodfeed/internal/domain"
)

type filterOdds struct {
	base           float64
	withSubEmotion float64
}

// MoodFilter marca publicaciones como filtradas (contraste con el mood de referencia)
// o promovidas (complementarias). Nunca muta las publicaciones recibidas.
type MoodFilter struct {
	graph *MoodGraph
	odds  map[domain.FilterStrength]filterOdds
}

func NewMoodFilter(graph *MoodGraph) *MoodFilter {
	if graph == nil {
		graph = DefaultMoodGraph
	}
	return &MoodFilter{
		graph: graph,
		odds: map[domain.FilterStrength]filterOdds{
			domain.FilterStrengthLow:    {base: 0.3, withSubEmotion: 0.4},
			domain.FilterStrengthMedium: {base: 0.7, withSubEmotion: 0.8},
			domain.FilterStrengthHigh:   {base: 0.9, withSubEmotion: 1.0},
		},
	}
}

// FilterProbability devuelve la probabilidad de ocultar un post en contraste.
// Con sub-emocion el objetivo es mas preciso y la probabilidad sube.
func (f *MoodFilter) FilterProbability(strength domain.FilterStrength, hasSubEmotion bool) (float64, error) {
	o, ok := f.odds[strength]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidFilterStrength, string(strength))
	}
	if hasSubEmotion {
		return o.withSubEmotion, nil
	}
	return o.base, nil
}

// Apply devuelve copias anotadas de posts segun referenceMood.
// Sin mood de referencia es la identidad. Cada post se evalua primero por contraste;
// solo si no quedo filtrado se revisa el refuerzo, asi Filtered y Boosted son excluyentes.
func (f *MoodFilter) Apply(
	posts []domain.Post,
	referenceMood domain.Mood,
	strength domain.FilterStrength,
	subEmotion domain.SubEmotion,
	rng RandSource,
) ([]domain.Post, error) {
	out := make([]domain.Post, len(posts))
	copy(out, posts)
	if referenceMood == "" {
		return out, nil
	}

	contrast, err := f.graph.ContrastMoodsOf(referenceMood)
	if err != nil {
		return nil, err
	}
	complementary, err := f.graph.ComplementaryMoodsOf(referenceMood)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateSubEmotion(referenceMood, subEmotion); err != nil {
		return nil, err
	}
	probability, err := f.FilterProbability(strength, subEmotion != "")
	if err != nil {
		return nil, err
	}

	for i := range out {
		post := &out[i]
		post.Filtered = false
		post.Boosted = false
		if post.HasAnyMood(contrast) && rng.Float64() < probability {
			post.Filtered = true
			continue
		}
		if post.HasAnyMood(complementary) {
			post.Boosted = true
		}
	}
	return out, nil
}

// FilterSummary resume el resultado de una pasada del filtro.
type FilterSummary struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
	Boosted  int `json:"boosted"`
}

func Summarize(posts []domain.Post) FilterSummary {
	s := FilterSummary{Total: len(posts)}
	for _, p := range posts {
		switch {
		case p.Filtered:
			s.Filtered++
		case p.Boosted:
			s.Boosted++
		}
	}
	return s
}

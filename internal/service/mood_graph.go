package service

import "moodfeed/internal/domain"

// MoodGraph relaciona cada mood con sus moods de contraste (candidatos a ocultar)
// y complementarios (candidatos a promover). Es una heuristica terapeutica curada a mano,
// no una metrica de similitud, por eso no es simetrica.
type MoodGraph struct {
	contrast      map[domain.Mood][]domain.Mood
	complementary map[domain.Mood][]domain.Mood
}

// DefaultMoodGraph permite uso directo sin instanciar.
var DefaultMoodGraph = NewMoodGraph()

func NewMoodGraph() *MoodGraph {
	return &MoodGraph{
		contrast: map[domain.Mood][]domain.Mood{
			domain.MoodHappy:    {domain.MoodSad, domain.MoodStressed, domain.MoodAnxious},
			domain.MoodSad:      {domain.MoodHappy, domain.MoodExcited},
			domain.MoodAngry:    {domain.MoodCalm, domain.MoodHappy},
			domain.MoodStressed: {domain.MoodCalm, domain.MoodExcited},
			domain.MoodAnxious:  {domain.MoodCalm, domain.MoodHappy},
			domain.MoodExcited:  {domain.MoodCalm, domain.MoodSad},
			domain.MoodCalm:     {domain.MoodExcited, domain.MoodAngry},
		},
		complementary: map[domain.Mood][]domain.Mood{
			domain.MoodHappy:    {domain.MoodExcited, domain.MoodCalm},
			domain.MoodSad:      {domain.MoodCalm, domain.MoodHappy},
			domain.MoodAngry:    {domain.MoodCalm, domain.MoodHappy},
			domain.MoodStressed: {domain.MoodCalm, domain.MoodHappy},
			domain.MoodAnxious:  {domain.MoodCalm, domain.MoodHappy},
			domain.MoodExcited:  {domain.MoodHappy, domain.MoodCalm},
			domain.MoodCalm:     {domain.MoodHappy, domain.MoodExcited},
		},
	}
}

// ContrastMoodsOf devuelve los moods emocionalmente opuestos a mood.
func (g *MoodGraph) ContrastMoodsOf(mood domain.Mood) ([]domain.Mood, error) {
	return lookupMoods(g.contrast, mood)
}

// ComplementaryMoodsOf devuelve los moods que refuerzan o mejoran mood.
func (g *MoodGraph) ComplementaryMoodsOf(mood domain.Mood) ([]domain.Mood, error) {
	return lookupMoods(g.complementary, mood)
}

func lookupMoods(table map[domain.Mood][]domain.Mood, mood domain.Mood) ([]domain.Mood, error) {
	moods, ok := table[mood]
	if !ok {
		return nil, &domain.InvalidMoodError{Mood: mood}
	}
	return append([]domain.Mood(nil), moods...), nil
}

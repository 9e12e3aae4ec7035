package domain

import "strings"

// Mood es la categoria emocional gruesa que el usuario elige o que se infiere del texto.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodAngry    Mood = "angry"
	MoodStressed Mood = "stressed"
	MoodAnxious  Mood = "anxious"
	MoodExcited  Mood = "excited"
	MoodCalm     Mood = "calm"
)

// AllMoods devuelve la taxonomia completa en orden de catalogo.
func AllMoods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodAngry, MoodStressed, MoodAnxious, MoodExcited, MoodCalm}
}

// Valid indica si el mood pertenece a la taxonomia cerrada.
func (m Mood) Valid() bool {
	_, ok := moodCatalog[m]
	return ok
}

// ParseMood normaliza y valida un mood recibido como texto.
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if !m.Valid() {
		return "", &InvalidMoodError{Mood: m}
	}
	return m, nil
}

// SubEmotion refina un Mood; nunca existe sin su mood padre.
type SubEmotion string

const (
	SubEmotionJoyful   SubEmotion = "joyful"
	SubEmotionGrateful SubEmotion = "grateful"
	SubEmotionContent  SubEmotion = "content"
	SubEmotionProud    SubEmotion = "proud"

	SubEmotionLonely       SubEmotion = "lonely"
	SubEmotionDisappointed SubEmotion = "disappointed"
	SubEmotionGrieving     SubEmotion = "grieving"
	SubEmotionNostalgic    SubEmotion = "nostalgic"

	SubEmotionFrustrated SubEmotion = "frustrated"
	SubEmotionIrritated  SubEmotion = "irritated"
	SubEmotionResentful  SubEmotion = "resentful"
	SubEmotionFurious    SubEmotion = "furious"

	SubEmotionOverwhelmed SubEmotion = "overwhelmed"
	SubEmotionPressured   SubEmotion = "pressured"
	SubEmotionBurnedOut   SubEmotion = "burned_out"
	SubEmotionRestless    SubEmotion = "restless"

	SubEmotionWorried  SubEmotion = "worried"
	SubEmotionNervous  SubEmotion = "nervous"
	SubEmotionInsecure SubEmotion = "insecure"
	SubEmotionPanicked SubEmotion = "panicked"

	SubEmotionEnthusiastic SubEmotion = "enthusiastic"
	SubEmotionInspired     SubEmotion = "inspired"
	SubEmotionEager        SubEmotion = "eager"
	SubEmotionThrilled     SubEmotion = "thrilled"

	SubEmotionRelaxed  SubEmotion = "relaxed"
	SubEmotionPeaceful SubEmotion = "peaceful"
	SubEmotionMindful  SubEmotion = "mindful"
	SubEmotionSerene   SubEmotion = "serene"
)

// Parent devuelve el mood al que pertenece la sub-emocion.
func (s SubEmotion) Parent() (Mood, bool) {
	m, ok := subEmotionParents[s]
	return m, ok
}

// ParseSubEmotion normaliza y valida una sub-emocion. La cadena vacia es "sin sub-emocion".
func ParseSubEmotion(raw string) (SubEmotion, error) {
	s := SubEmotion(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return "", nil
	}
	if _, ok := subEmotionParents[s]; !ok {
		return "", ErrInvalidSubEmotion
	}
	return s, nil
}

// ValidateSubEmotion verifica que sub refine a mood. Una sub-emocion vacia siempre es valida.
func ValidateSubEmotion(mood Mood, sub SubEmotion) error {
	if sub == "" {
		return nil
	}
	parent, ok := sub.Parent()
	if !ok {
		return ErrInvalidSubEmotion
	}
	if parent != mood {
		return ErrSubEmotionMismatch
	}
	return nil
}

type SubEmotionOption struct {
	ID          SubEmotion `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
}

type MoodOption struct {
	ID          Mood               `json:"id"`
	Label       string             `json:"label"`
	Icon        string             `json:"icon"`
	Description string             `json:"description"`
	Color       string             `json:"color"`
	SubEmotions []SubEmotionOption `json:"sub_emotions"`
}

// MoodOptions devuelve una copia del catalogo en orden estable.
func MoodOptions() []MoodOption {
	out := make([]MoodOption, 0, len(moodCatalog))
	for _, m := range AllMoods() {
		opt, _ := LookupMoodOption(m)
		out = append(out, opt)
	}
	return out
}

// LookupMoodOption devuelve la ficha descriptiva de un mood.
func LookupMoodOption(m Mood) (MoodOption, bool) {
	opt, ok := moodCatalog[m]
	if !ok {
		return MoodOption{}, false
	}
	opt.SubEmotions = append([]SubEmotionOption(nil), opt.SubEmotions...)
	return opt, true
}

// MoodPhrase describe el mood en lenguaje amigable ("a bit down").
func MoodPhrase(m Mood) string {
	if p, ok := moodPhrases[m]; ok {
		return p
	}
	return string(m)
}

var moodPhrases = map[Mood]string{
	MoodHappy:    "happy and positive",
	MoodSad:      "a bit down",
	MoodAngry:    "frustrated or upset",
	MoodStressed: "under pressure",
	MoodAnxious:  "worried or anxious",
	MoodExcited:  "excited and enthusiastic",
	MoodCalm:     "peaceful and relaxed",
}

var moodCatalog = map[Mood]MoodOption{
	MoodHappy: {
		ID: MoodHappy, Label: "Happy", Icon: "😊", Description: "I feel good and positive", Color: "#FFD166",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionJoyful, Label: "Joyful", Description: "Full of joy and lightness"},
			{ID: SubEmotionGrateful, Label: "Grateful", Description: "Thankful for what I have"},
			{ID: SubEmotionContent, Label: "Content", Description: "Satisfied and at ease"},
			{ID: SubEmotionProud, Label: "Proud", Description: "Pleased with something I did"},
		},
	},
	MoodSad: {
		ID: MoodSad, Label: "Sad", Icon: "😔", Description: "I feel down or blue", Color: "#118AB2",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionLonely, Label: "Lonely", Description: "Missing connection with others"},
			{ID: SubEmotionDisappointed, Label: "Disappointed", Description: "Things did not go as hoped"},
			{ID: SubEmotionGrieving, Label: "Grieving", Description: "Coping with a loss"},
			{ID: SubEmotionNostalgic, Label: "Nostalgic", Description: "Longing for the past"},
		},
	},
	MoodAngry: {
		ID: MoodAngry, Label: "Angry", Icon: "😠", Description: "I feel frustrated or upset", Color: "#EF476F",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionFrustrated, Label: "Frustrated", Description: "Blocked from what I want"},
			{ID: SubEmotionIrritated, Label: "Irritated", Description: "Small things are getting to me"},
			{ID: SubEmotionResentful, Label: "Resentful", Description: "Holding on to being wronged"},
			{ID: SubEmotionFurious, Label: "Furious", Description: "Intensely angry"},
		},
	},
	MoodStressed: {
		ID: MoodStressed, Label: "Stressed", Icon: "😫", Description: "I feel overwhelmed", Color: "#073B4C",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionOverwhelmed, Label: "Overwhelmed", Description: "Too much on my plate"},
			{ID: SubEmotionPressured, Label: "Pressured", Description: "Deadlines and expectations"},
			{ID: SubEmotionBurnedOut, Label: "Burned out", Description: "Running on empty"},
			{ID: SubEmotionRestless, Label: "Restless", Description: "Unable to settle down"},
		},
	},
	MoodAnxious: {
		ID: MoodAnxious, Label: "Anxious", Icon: "😰", Description: "I feel worried or nervous", Color: "#6A4C93",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionWorried, Label: "Worried", Description: "Thinking about what could go wrong"},
			{ID: SubEmotionNervous, Label: "Nervous", Description: "On edge about something coming up"},
			{ID: SubEmotionInsecure, Label: "Insecure", Description: "Doubting myself"},
			{ID: SubEmotionPanicked, Label: "Panicked", Description: "Feeling out of control"},
		},
	},
	MoodExcited: {
		ID: MoodExcited, Label: "Excited", Icon: "🤩", Description: "I feel energetic and enthusiastic", Color: "#FF9E00",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionEnthusiastic, Label: "Enthusiastic", Description: "Eager to dive in"},
			{ID: SubEmotionInspired, Label: "Inspired", Description: "Full of new ideas"},
			{ID: SubEmotionEager, Label: "Eager", Description: "Looking forward to something"},
			{ID: SubEmotionThrilled, Label: "Thrilled", Description: "Buzzing with energy"},
		},
	},
	MoodCalm: {
		ID: MoodCalm, Label: "Calm", Icon: "😌", Description: "I feel peaceful and relaxed", Color: "#06D6A0",
		SubEmotions: []SubEmotionOption{
			{ID: SubEmotionRelaxed, Label: "Relaxed", Description: "Tension has eased"},
			{ID: SubEmotionPeaceful, Label: "Peaceful", Description: "Quiet inside"},
			{ID: SubEmotionMindful, Label: "Mindful", Description: "Present in the moment"},
			{ID: SubEmotionSerene, Label: "Serene", Description: "Untroubled and clear"},
		},
	},
}

var subEmotionParents = func() map[SubEmotion]Mood {
	out := make(map[SubEmotion]Mood)
	for mood, opt := range moodCatalog {
		for _, sub := range opt.SubEmotions {
			out[sub.ID] = mood
		}
	}
	return out
}()

package service

import (
	"fmt"

	"moodfeed/internal/domain"
)

// SupportiveResponder elige mensajes de apoyo segun el sentimiento detectado y
// escala a recursos de crisis cuando hay angustia.
type SupportiveResponder struct {
	responses map[domain.Sentiment][]string
	resources map[domain.Severity]string
}

// DefaultSupportiveResponder permite uso directo sin instanciar.
var DefaultSupportiveResponder = NewSupportiveResponder()

func NewSupportiveResponder() *SupportiveResponder {
	return &SupportiveResponder{
		responses: map[domain.Sentiment][]string{
			domain.SentimentDistressed: {
				"I noticed you might be going through a difficult time. Would you like to talk about it?",
				"I'm here for you. It's okay to take a break if you need one. Would you like some resources that might help?",
				"Your wellbeing matters. Would it help to connect with supportive resources or communities?",
				"I'm concerned about how you're feeling. Would you like to talk or perhaps consider reaching out to someone you trust?",
				"Sometimes things can feel overwhelming. Would you like me to suggest some coping strategies or resources?",
			},
			domain.SentimentNegative: {
				"It seems like you might be feeling down. Would you like to see some content that might lift your spirits?",
				"I've noticed your comments reflect some frustration. Would you like me to adjust your feed to show more positive content?",
				"Sometimes a change of perspective can help. Would you like to explore some different content?",
				"Would it help to take a short break or see some uplifting content instead?",
			},
			domain.SentimentNeutral: {
				"How are you feeling today? I'm here if you need anything.",
				"Is there anything specific you'd like to see in your feed today?",
				"Let me know if you'd like any adjustments to your content preferences.",
				"I'm here to help make your browsing experience better. Any preferences for today?",
			},
			domain.SentimentPositive: {
				"It's great to see you in good spirits! Would you like to see more content that matches your mood?",
				"Your positivity is wonderful! I'll keep showing you content that maintains this vibe.",
				"Glad to see you're enjoying the content! Any specific topics you'd like to explore more?",
				"I'm happy you're feeling good! Would you like me to recommend some more content you might enjoy?",
			},
		},
		resources: map[domain.Severity]string{
			domain.SeverityLow: "Here are some self-care suggestions:\n\n" +
				"• Take a social media break\n" +
				"• Practice deep breathing exercises\n" +
				"• Go for a short walk outdoors\n" +
				"• Listen to music you enjoy\n" +
				"• Write down your thoughts",
			domain.SeverityMedium: "These resources might be helpful:\n\n" +
				"• 7 Cups: Free online chat support\n" +
				"• BetterHelp: Online counseling\n" +
				"• Headspace: Guided meditation app\n" +
				"• Journal prompts for emotional processing\n" +
				"• Local support groups",
			// Texto de seguridad: se reproduce literal.
			domain.SeverityHigh: "If you're going through a difficult time, please consider these resources:\n\n" +
				"• Crisis Text Line: Text HOME to 741741\n" +
				"• National Suicide Prevention Lifeline: 988\n" +
				"• BetterHelp: Online counseling\n" +
				"• Local emergency services: 911\n" +
				"• Nearest emergency room",
		},
	}
}

// Respond elige uniformemente un mensaje del grupo del sentimiento.
// Un sentimiento desconocido se trata como neutral.
func (r *SupportiveResponder) Respond(sentiment domain.Sentiment, rng RandSource) string {
	pool, ok := r.responses[sentiment]
	if !ok {
		pool = r.responses[domain.SentimentNeutral]
	}
	return pool[rng.Intn(len(pool))]
}

// ResourcesFor devuelve los recursos de apoyo para un nivel de severidad.
func (r *SupportiveResponder) ResourcesFor(severity domain.Severity) (string, error) {
	text, ok := r.resources[severity]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSeverity, string(severity))
	}
	return text, nil
}

// SupportiveReply es un mensaje de apoyo con la escalada a recursos cuando corresponde.
type SupportiveReply struct {
	Sentiment domain.Sentiment `json:"sentiment"`
	Text      string           `json:"text"`
	Severity  domain.Severity  `json:"severity,omitempty"`
	Resources string           `json:"resources,omitempty"`
}

// Reply arma la respuesta; la angustia siempre ofrece los recursos de severidad alta.
func (r *SupportiveResponder) Reply(sentiment domain.Sentiment, rng RandSource) SupportiveReply {
	reply := SupportiveReply{Sentiment: sentiment, Text: r.Respond(sentiment, rng)}
	if sentiment == domain.SentimentDistressed {
		reply.Severity = domain.SeverityHigh
		reply.Resources = r.resources[domain.SeverityHigh]
	}
	return reply
}

// SeverityFor estima la severidad a partir de un conteo de sentimientos.
func SeverityFor(counts domain.SentimentCounts) domain.Severity {
	switch {
	case counts.Distressed > 0:
		return domain.SeverityHigh
	case counts.Negative > counts.Positive:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

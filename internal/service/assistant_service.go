package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
)

const (
	assistantGreeting = "Hi there! I'm your AI assistant. How can I help you today?"
	feedAdjustOffer   = "Would you like me to adjust your feed to show more uplifting content?"
)

// AssistantReply agrupa la respuesta del asistente y, si corresponde, el mensaje de recursos.
type AssistantReply struct {
	UserMessage *domain.AssistantMessage `json:"user_message,omitempty"`
	Message     domain.AssistantMessage  `json:"message"`
	Resources   *domain.AssistantMessage `json:"resources,omitempty"`
	Severity    domain.Severity          `json:"severity"`
}

// AssistantService responde al visor con mensajes de apoyo y escala a recursos segun la severidad.
type AssistantService struct {
	moods     *MoodService
	inference *MoodInference
	responder *SupportiveResponder
	logger    *zap.Logger
	now       func() time.Time
}

func NewAssistantService(logger *zap.Logger, moods *MoodService, responder *SupportiveResponder) *AssistantService {
	if responder == nil {
		responder = DefaultSupportiveResponder
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{
		moods:     moods,
		inference: moods.inference,
		responder: responder,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AssistantService) Greeting(sessionID string) domain.AssistantMessage {
	return s.message(sessionID, domain.MessageRoleAssistant, assistantGreeting, "")
}

// CheckIn revisa los comentarios recientes y, si alguno muestra angustia, devuelve un
// mensaje proactivo con recursos. Devuelve nil cuando no hay nada que decir.
func (s *AssistantService) CheckIn(ctx context.Context, sessionID string, rng RandSource) (*AssistantReply, error) {
	session, err := s.moods.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Settings.AIAssistEnabled {
		return nil, nil
	}
	distressed := false
	for _, c := range session.RecentComments {
		if s.inference.SentimentOf(c) == domain.SentimentDistressed {
			distressed = true
			break
		}
	}
	if !distressed {
		return nil, nil
	}

	reply := s.build(session.ID, s.responder.Reply(domain.SentimentDistressed, rng))
	s.logger.Warn("distress detected in recent comments", zap.String("session_id", session.ID))
	return &reply, nil
}

// Reply clasifica el texto del usuario y responde. La severidad se calcula sobre los
// comentarios recientes mas este mensaje; media o alta adjunta recursos.
func (s *AssistantService) Reply(ctx context.Context, sessionID, text string, rng RandSource) (AssistantReply, error) {
	if strings.TrimSpace(text) == "" {
		return AssistantReply{}, ErrEmptyComment
	}
	session, err := s.moods.GetSession(ctx, sessionID)
	if err != nil {
		return AssistantReply{}, err
	}
	if !session.Settings.AIAssistEnabled {
		return AssistantReply{}, ErrAssistantDisabled
	}

	sentiment := s.inference.classifier.Classify(text)
	counts := s.inference.Tally(session.RecentComments)
	counts.Add(sentiment)

	supportive := s.responder.Reply(sentiment, rng)
	if supportive.Resources == "" {
		severity := SeverityFor(counts)
		if severity != domain.SeverityLow {
			resources, err := s.responder.ResourcesFor(severity)
			if err != nil {
				return AssistantReply{}, err
			}
			supportive.Severity = severity
			supportive.Resources = resources
		}
	}

	reply := s.build(session.ID, supportive)
	userMsg := s.message(session.ID, domain.MessageRoleUser, text, sentiment)
	reply.UserMessage = &userMsg

	s.logger.Info("assistant replied",
		zap.String("session_id", session.ID),
		zap.String("sentiment", string(sentiment)),
		zap.String("severity", string(reply.Severity)),
	)
	return reply, nil
}

func (s *AssistantService) build(sessionID string, supportive SupportiveReply) AssistantReply {
	reply := AssistantReply{
		Message:  s.message(sessionID, domain.MessageRoleAssistant, supportive.Text, supportive.Sentiment),
		Severity: domain.SeverityLow,
	}
	if supportive.Resources != "" {
		reply.Severity = supportive.Severity
		resources := s.message(sessionID, domain.MessageRoleAssistant, supportive.Resources+"\n\n"+feedAdjustOffer, "")
		reply.Resources = &resources
	}
	return reply
}

func (s *AssistantService) message(sessionID, role, text string, sentiment domain.Sentiment) domain.AssistantMessage {
	return domain.AssistantMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		Sentiment: sentiment,
		CreatedAt: s.now().UTC(),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/repository"
)

var (
	ErrMoodNotSelected   = errors.New("mood not selected")
	ErrAssistantDisabled = errors.New("assistant disabled")
	ErrEmptyComment      = errors.New("comment text is empty")
)

// SettingsPatch aplica cambios parciales a los ajustes; nil deja el valor actual.
type SettingsPatch struct {
	MoodFilterEnabled        *bool
	MoodFilterStrength       *domain.FilterStrength
	AIAssistEnabled          *bool
	SentimentTrackingEnabled *bool
}

// MoodService administra el estado del visor: mood elegido, ajustes, comentarios y mood detectado.
type MoodService struct {
	sessions        repository.MoodSessionRepository
	comments        repository.CommentRepository
	inference       *MoodInference
	classifier      *SentimentClassifier
	defaultStrength domain.FilterStrength
	commentWindow   int
	locks           *sessionLocks // una escritura por sesion a la vez
	logger          *zap.Logger
	now             func() time.Time
}

func NewMoodService(
	logger *zap.Logger,
	sessions repository.MoodSessionRepository,
	comments repository.CommentRepository,
	inference *MoodInference,
	defaultStrength domain.FilterStrength,
	commentWindow int,
) *MoodService {
	if inference == nil {
		inference = NewMoodInference(nil)
	}
	if commentWindow <= 0 {
		commentWindow = 20
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{
		sessions:        sessions,
		comments:        comments,
		inference:       inference,
		classifier:      inference.classifier,
		defaultStrength: defaultStrength,
		commentWindow:   commentWindow,
		locks:           newSessionLocks(),
		logger:          logger,
		now:             time.Now,
	}
}

// StartSession crea el estado del visor con el mood elegido. Con viewer siembra los comentarios
// recientes de ese autor; sin viewer la sesion arranca sin historial.
func (s *MoodService) StartSession(ctx context.Context, viewer string, mood domain.Mood, sub domain.SubEmotion) (domain.MoodSession, error) {
	if !mood.Valid() {
		return domain.MoodSession{}, &domain.InvalidMoodError{Mood: mood}
	}
	if err := domain.ValidateSubEmotion(mood, sub); err != nil {
		return domain.MoodSession{}, err
	}

	now := s.now().UTC()
	session := domain.MoodSession{
		ID:                uuid.NewString(),
		Viewer:            strings.TrimSpace(viewer),
		CurrentMood:       mood,
		CurrentSubEmotion: sub,
		Settings:          domain.DefaultSettings(s.defaultStrength),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if s.comments != nil && session.Viewer != "" {
		recent, err := s.comments.ListRecentComments(ctx, session.Viewer, s.commentWindow)
		if err != nil {
			return domain.MoodSession{}, fmt.Errorf("list recent comments: %w", err)
		}
		for i := range recent {
			recent[i].SessionID = session.ID
		}
		session.RecentComments = recent
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.MoodSession{}, fmt.Errorf("create session: %w", err)
	}
	s.logger.Info("mood session started",
		zap.String("session_id", session.ID),
		zap.String("viewer", session.Viewer),
		zap.Int("seeded_comments", len(session.RecentComments)),
		zap.String("mood", string(mood)),
		zap.String("sub_emotion", string(sub)),
	)
	return session, nil
}

func (s *MoodService) GetSession(ctx context.Context, id string) (domain.MoodSession, error) {
	return s.sessions.Get(ctx, id)
}

// SelectMood reemplaza el mood elegido. El mood detectado se descarta para que se recalcule.
func (s *MoodService) SelectMood(ctx context.Context, id string, mood domain.Mood, sub domain.SubEmotion) (domain.MoodSession, error) {
	if !mood.Valid() {
		return domain.MoodSession{}, &domain.InvalidMoodError{Mood: mood}
	}
	if err := domain.ValidateSubEmotion(mood, sub); err != nil {
		return domain.MoodSession{}, err
	}
	defer s.locks.lock(id)()
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.MoodSession{}, err
	}
	session.CurrentMood = mood
	session.CurrentSubEmotion = sub
	session.DetectedMood = ""
	return s.save(ctx, session)
}

func (s *MoodService) UpdateSettings(ctx context.Context, id string, patch SettingsPatch) (domain.MoodSession, error) {
	if patch.MoodFilterStrength != nil && !patch.MoodFilterStrength.Valid() {
		return domain.MoodSession{}, domain.ErrInvalidFilterStrength
	}
	defer s.locks.lock(id)()
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.MoodSession{}, err
	}
	if patch.MoodFilterEnabled != nil {
		session.Settings.MoodFilterEnabled = *patch.MoodFilterEnabled
	}
	if patch.MoodFilterStrength != nil {
		session.Settings.MoodFilterStrength = *patch.MoodFilterStrength
	}
	if patch.AIAssistEnabled != nil {
		session.Settings.AIAssistEnabled = *patch.AIAssistEnabled
	}
	if patch.SentimentTrackingEnabled != nil {
		session.Settings.SentimentTrackingEnabled = *patch.SentimentTrackingEnabled
	}
	return s.save(ctx, session)
}

// RecordComment clasifica el comentario, lo guarda con su etiqueta y, si el seguimiento
// esta activo, vuelve a inferir el mood con la ventana actualizada.
func (s *MoodService) RecordComment(ctx context.Context, id, text string, rng RandSource) (domain.Comment, domain.MoodSession, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, domain.MoodSession{}, ErrEmptyComment
	}
	defer s.locks.lock(id)()
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.Comment{}, domain.MoodSession{}, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Username:  session.Viewer,
		Text:      text,
		CreatedAt: s.now().UTC(),
		Sentiment: s.classifier.Classify(text),
	}
	recent := append([]domain.Comment{comment}, session.RecentComments...)
	if len(recent) > s.commentWindow {
		recent = recent[:s.commentWindow]
	}
	session.RecentComments = recent

	if session.Settings.SentimentTrackingEnabled {
		if mood, ok := s.inference.InferMood(session.RecentComments, rng); ok {
			session.DetectedMood = mood
		}
	}

	session, err = s.save(ctx, session)
	if err != nil {
		return domain.Comment{}, domain.MoodSession{}, err
	}
	s.logger.Info("comment recorded",
		zap.String("session_id", session.ID),
		zap.String("sentiment", string(comment.Sentiment)),
	)
	return comment, session, nil
}

// DetectMood infiere el mood a partir de los comentarios recientes. Solo escribe DetectedMood
// con el seguimiento activo y cuando hubo inferencia; devuelve el estado resultante.
func (s *MoodService) DetectMood(ctx context.Context, id string, rng RandSource) (domain.MoodSession, error) {
	defer s.locks.lock(id)()
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.MoodSession{}, err
	}
	if !session.Settings.SentimentTrackingEnabled {
		return session, nil
	}
	mood, ok := s.inference.InferMood(session.RecentComments, rng)
	if !ok {
		return session, nil
	}
	session.DetectedMood = mood
	if mood != session.CurrentMood {
		s.logger.Info("detected mood differs from selected mood",
			zap.String("session_id", session.ID),
			zap.String("selected", string(session.CurrentMood)),
			zap.String("detected", string(mood)),
		)
	}
	return s.save(ctx, session)
}

func (s *MoodService) save(ctx context.Context, session domain.MoodSession) (domain.MoodSession, error) {
	session.UpdatedAt = s.now().UTC()
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.MoodSession{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

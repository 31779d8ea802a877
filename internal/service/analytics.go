package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/internal/analytics"
	"github.com/heavenly-delusionz/companion-platform/internal/model"
	natsclient "github.com/heavenly-delusionz/companion-platform/internal/nats"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
)

// AnalyticsService produces mental health assessments from session history.
type AnalyticsService struct {
	analyzer       *analytics.Analyzer
	messageService *MessageService
	sessionService *SessionService
	streamManager  *natsclient.StreamManager
	timeout        time.Duration
	logger         *logger.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	analyzer *analytics.Analyzer,
	messageService *MessageService,
	sessionService *SessionService,
	streamManager *natsclient.StreamManager,
	timeout time.Duration,
	log *logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		analyzer:       analyzer,
		messageService: messageService,
		sessionService: sessionService,
		streamManager:  streamManager,
		timeout:        timeout,
		logger:         log,
	}
}

// AnalyzeSession assesses a single session's conversation. The assessment
// itself never fails; only reading the session can.
func (s *AnalyticsService) AnalyzeSession(ctx context.Context, userID, sessionID string) (*analytics.Assessment, error) {
	if _, err := s.sessionService.Get(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	turns, err := s.messageService.Snapshot(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	assessment := s.analyzer.Analyze(ctx, userID, turns, sessionID)
	s.publishAssessmentEvent(userID, sessionID, assessment)

	return assessment, nil
}

// AnalyzeUser assesses a user's conversation history across all of their
// sessions, oldest session first.
func (s *AnalyticsService) AnalyzeUser(ctx context.Context, userID string) (*analytics.Assessment, error) {
	list, err := s.sessionService.List(ctx, userID, snapshotLimit, 0)
	if err != nil {
		return nil, err
	}

	sessions := list.Sessions
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	var turns []analytics.Turn
	for _, sess := range sessions {
		sessionTurns, err := s.messageService.Snapshot(ctx, userID, sess.ID)
		if err != nil {
			s.logger.Warn("skipping session in cross-session analysis",
				zap.String("session_id", sess.ID),
				zap.Error(err))
			continue
		}
		turns = append(turns, sessionTurns...)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.analyzer.Analyze(ctx, userID, turns, ""), nil
}

// publishAssessmentEvent records that an assessment completed on the
// session's event stream. Publish failures are logged, not surfaced.
func (s *AnalyticsService) publishAssessmentEvent(userID, sessionID string, a *analytics.Assessment) {
	if s.streamManager == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mode := "model"
	if a.Degraded() {
		mode = "fallback"
	}

	_, err := s.streamManager.PublishEvent(ctx, &model.SessionEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: sessionID,
		UserID:    userID,
		Type:      model.EventTypeAssessment,
		Metadata: map[string]any{
			"mode":          mode,
			"overall_score": a.OverallScore,
			"risk_level":    string(a.RiskLevel),
			"confidence":    a.AssessmentConfidence,
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to publish assessment event",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

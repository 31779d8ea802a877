package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
	"github.com/heavenly-delusionz/companion-platform/pkg/metrics"
)

// Generator produces a structured-output completion for an analysis prompt.
// *llm.GeminiClient satisfies this interface.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// FailureKind classifies why the model path was abandoned for a request.
type FailureKind string

const (
	// FailureGenerate covers transport and model errors, including an
	// analyzer constructed without a generator.
	FailureGenerate FailureKind = "generate"
	// FailureDecode covers responses that are not valid JSON for the schema.
	FailureDecode FailureKind = "decode"
	// FailureValidate covers decoded records that break range or
	// completeness constraints.
	FailureValidate FailureKind = "validate"
)

var errNoGenerator = errors.New("analytics: no generator configured")

// Analyzer runs the primary model-backed assessment path with a keyword
// fallback behind it. Analyze never returns an error: every failure along
// the model path degrades to the fallback assessor, which is total.
type Analyzer struct {
	gen      Generator
	prompts  *PromptBuilder
	fallback *FallbackAssessor
	log      *logger.Logger
	now      func() time.Time
}

// NewAnalyzer builds an analyzer. gen may be nil, in which case every
// analysis takes the fallback path.
func NewAnalyzer(gen Generator, log *logger.Logger) *Analyzer {
	return &Analyzer{
		gen:      gen,
		prompts:  NewPromptBuilder(),
		fallback: NewFallbackAssessor(MatchSubstring),
		log:      log,
		now:      time.Now,
	}
}

// Analyze assesses a conversation for userID. sessionID may be empty for
// cross-session analysis. The returned assessment is always non-nil and
// schema-valid; callers can distinguish the fallback path by its
// assessment_confidence of 0.3.
func (a *Analyzer) Analyze(ctx context.Context, userID string, turns []Turn, sessionID string) *Assessment {
	start := a.now()

	if len(turns) == 0 {
		a.log.Info("no conversation data, using fallback assessment",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID))
		metrics.RecordAssessmentFallback("empty_conversation")
		return a.finish(a.fallback.Assess(userID, turns, sessionID), "fallback", start)
	}

	assessment, kind, err := a.analyzeWithModel(ctx, userID, turns, sessionID)
	if err != nil {
		a.log.Warn("model assessment failed, using fallback",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.String("failure_kind", string(kind)),
			zap.Error(err))
		metrics.RecordAssessmentFallback(string(kind))
		return a.finish(a.fallback.Assess(userID, turns, sessionID), "fallback", start)
	}

	return a.finish(assessment, "model", start)
}

func (a *Analyzer) finish(assessment *Assessment, mode string, start time.Time) *Assessment {
	metrics.RecordAssessment(mode, a.now().Sub(start).Seconds())
	return assessment
}

func (a *Analyzer) analyzeWithModel(ctx context.Context, userID string, turns []Turn, sessionID string) (*Assessment, FailureKind, error) {
	if a.gen == nil {
		return nil, FailureGenerate, errNoGenerator
	}

	prompt := a.prompts.Build(turns, SummarizeContext(turns))

	raw, err := a.gen.Generate(ctx, prompt, ResponseSchema())
	if err != nil {
		return nil, FailureGenerate, err
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return nil, FailureDecode, fmt.Errorf("decode assessment: %w", err)
	}

	if err := assessment.Validate(); err != nil {
		return nil, FailureValidate, err
	}

	// Identity and timestamp are owned by the analyzer, never the model.
	assessment.UserID = userID
	assessment.SessionID = sessionID
	assessment.AssessmentTimestamp = a.now()

	return &assessment, "", nil
}

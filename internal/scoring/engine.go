// Package scoring computes a compatibility score between a structured resume
// and a free-text job description. Five independent component scorers
// (keyword, skill, semantic, experience, education) each produce a value in
// [0,1]; the engine combines them with configurable weights into an integer
// percentage plus skill-match diagnostics.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/jobreq"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrMissingText is the error marker reported when either raw text input is
// empty. It is surfaced inside the report, not as a Go error, because the
// caller must always receive a report-shaped value for malformed upstream
// input.
const ErrMissingText = "missing text data"

// Engine scores one (resume, job) pair per invocation. It holds no mutable
// state across calls and is safe for concurrent use; the injected embedder
// is the only expensive resource and is loaded once.
type Engine struct {
	embedder  embedding.Embedder
	extractor *jobreq.Extractor
	resolver  *dates.Resolver
	weights   types.WeightConfig
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default component weights.
func WithWeights(w types.WeightConfig) Option {
	return func(e *Engine) { e.weights = w }
}

// WithLogger sets the logger for soft-failure warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine builds an Engine around the given embedder. Zero-valued weights
// fall back to the defaults.
func NewEngine(embedder embedding.Embedder, opts ...Option) *Engine {
	e := &Engine{
		embedder: embedder,
		weights:  types.DefaultWeights(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.weights.IsZero() {
		e.weights = types.DefaultWeights()
	}
	e.extractor = jobreq.NewExtractor(e.logger)
	e.resolver = dates.NewResolver(e.logger)
	return e
}

// Score runs all five component scorers and aggregates them into a report.
// The only Go error it returns is an embedding-model failure; every other
// failure mode resolves to a documented default inside the report.
func (e *Engine) Score(ctx context.Context, resume types.ResumeFacts, job types.JobFacts) (*types.ScoreReport, error) {
	if strings.TrimSpace(resume.RawText) == "" || strings.TrimSpace(job.RawText) == "" {
		e.logger.Warn("scoring precondition failed", zap.String("reason", ErrMissingText))
		return errorReport(), nil
	}

	resumeSkills := resolveOrExtract(resume.Skills, func() []string {
		return e.extractor.ResumeSkills(resume.RawText)
	})

	var extractedRequired, extractedPreferred []string
	extractSections := sync.OnceFunc(func() {
		extractedRequired, extractedPreferred = e.extractor.SkillSections(job.RawText)
	})
	required := resolveOrExtract(job.RequiredSkills, func() []string {
		extractSections()
		return extractedRequired
	})
	preferred := resolveOrExtract(job.PreferredSkills, func() []string {
		extractSections()
		return extractedPreferred
	})

	var (
		keywordScore    float64
		semanticScore   float64
		experienceScore float64
		educationScore  float64
		skills          skillResult
	)

	// The five scorers share no state beyond the extracted intermediates
	// above, so they run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		keywordScore = scoreKeyword(resume.RawText, job.RawText)
		return nil
	})
	g.Go(func() error {
		skills = scoreSkill(resumeSkills, required, preferred)
		return nil
	})
	g.Go(func() error {
		var err error
		semanticScore, err = e.scoreSemantic(gctx, resume.RawText, job.RawText)
		return err
	})
	g.Go(func() error {
		experienceScore = e.scoreExperience(resume, job)
		return nil
	})
	g.Go(func() error {
		educationScore = e.scoreEducation(resume.RawText, job.RawText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	overall := e.weights.Keyword*keywordScore +
		e.weights.Skill*skills.Score +
		e.weights.Semantic*semanticScore +
		e.weights.Experience*experienceScore +
		e.weights.Education*educationScore

	return &types.ScoreReport{
		OverallScore: percent(overall),
		ComponentScores: map[types.Component]int{
			types.ComponentKeyword:    percent(keywordScore),
			types.ComponentSkill:      percent(skills.Score),
			types.ComponentSemantic:   percent(semanticScore),
			types.ComponentExperience: percent(experienceScore),
			types.ComponentEducation:  percent(educationScore),
		},
		SkillAnalysis: types.SkillAnalysis{
			MatchedSkills:          skills.Matched,
			MissingRequiredSkills:  skills.MissingRequired,
			MissingPreferredSkills: skills.MissingPreferred,
		},
	}, nil
}

// errorReport is the zero-score report for the missing-text precondition.
func errorReport() *types.ScoreReport {
	scores := make(map[types.Component]int, len(types.Components))
	for _, c := range types.Components {
		scores[c] = 0
	}
	return &types.ScoreReport{
		OverallScore:    0,
		ComponentScores: scores,
		SkillAnalysis: types.SkillAnalysis{
			MatchedSkills:          []string{},
			MissingRequiredSkills:  []string{},
			MissingPreferredSkills: []string{},
		},
		Error: ErrMissingText,
	}
}

// percent clamps a component score to [0,1] and scales it to an integer
// percentage.
func percent(score float64) int {
	return int(math.Round(clamp01(score) * 100))
}

package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/embedding"
)

// scoreSemantic encodes both texts with the configured embedding model and
// returns their cosine similarity clamped to [0,1]. An embedding failure is
// the one condition that aborts scoring: no meaningful semantic score can be
// produced without the model, and hosts should treat the error as retryable
// infrastructure failure.
func (e *Engine) scoreSemantic(ctx context.Context, resumeText, jdText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return 0, nil
	}

	resumeVec, err := e.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("embedding resume text: %w", err)
	}

	jobVec, err := e.embedder.Embed(ctx, jdText)
	if err != nil {
		return 0, fmt.Errorf("embedding job text: %w", err)
	}

	return clamp01(embedding.Cosine(resumeVec, jobVec)), nil
}

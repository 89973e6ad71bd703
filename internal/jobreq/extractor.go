// Package jobreq extracts structured requirements (years of experience,
// education level, skill lists) from free-text job descriptions. Extraction
// is heuristic: it degrades to zero values or empty sets rather than failing.
package jobreq

import "go.uber.org/zap"

// Extractor runs the requirement heuristics, logging soft failures and
// capped values at warning level.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor returns an Extractor. A nil logger disables logging.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/textutil"
)

// scoreKeyword computes lexical similarity between resume and job text as
// the cosine of their TF-IDF vectors over the two-document corpus. Terms are
// unigrams and bigrams of stop-word-filtered tokens. Degenerate inputs (an
// empty text or an empty shared vocabulary) score 0.
func scoreKeyword(resumeText, jdText string) float64 {
	resumeTF := termFrequencies(resumeText)
	jobTF := termFrequencies(jdText)
	if len(resumeTF) == 0 || len(jobTF) == 0 {
		return 0
	}

	// Smooth IDF over the two-document corpus: ln((1+N)/(1+df)) + 1.
	const corpusSize = 2
	idf := func(term string) float64 {
		df := 0
		if resumeTF[term] > 0 {
			df++
		}
		if jobTF[term] > 0 {
			df++
		}
		return math.Log(float64(1+corpusSize)/float64(1+df)) + 1
	}

	resumeVec := make(map[string]float64, len(resumeTF))
	for term, tf := range resumeTF {
		resumeVec[term] = float64(tf) * idf(term)
	}
	jobVec := make(map[string]float64, len(jobTF))
	for term, tf := range jobTF {
		jobVec[term] = float64(tf) * idf(term)
	}

	similarity := sparseCosine(resumeVec, jobVec)
	return clamp01(similarity)
}

// termFrequencies counts unigram and bigram occurrences in normalized,
// stop-word-filtered text. Single-character tokens are dropped before
// n-gram construction.
func termFrequencies(text string) map[string]int {
	tokens := make([]string, 0)
	for _, tok := range textutil.ContentTokens(text) {
		if len(tok) >= 2 {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	tf := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		tf[tok]++
		if i+1 < len(tokens) {
			tf[tok+" "+tokens[i+1]]++
		}
	}
	return tf
}

// sparseCosine computes cosine similarity between two sparse vectors.
func sparseCosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, weight := range a {
		normA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 bounds a score to [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package textutil

// Common English stop words
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "were": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true, "which": true,
	"why": true, "how": true, "all": true, "any": true, "both": true, "each": true,
	"few": true, "more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "can": true, "did": true,
	"do": true, "does": true, "doing": true, "done": true, "down": true, "up": true,
	"you": true, "your": true, "yours": true, "we": true, "our": true, "ours": true,
	"i": true, "me": true, "my": true, "their": true, "them": true, "there": true,
	"these": true, "those": true, "then": true, "if": true, "or": true, "because": true,
	"into": true, "through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "between": true, "out": true, "off": true,
	"over": true, "under": true, "again": true, "further": true, "here": true,
	"about": true, "against": true, "being": true, "been": true, "am": true,
	"should": true, "would": true, "could": true, "must": true, "may": true,
	"also": true, "able": true, "including": true, "etc": true, "us": true,
}

// IsStopWord reports whether a lowercased token is a common English stop word.
func IsStopWord(word string) bool {
	return stopWords[word]
}

package scoring

// resolveOrExtract returns the supplied value when present and non-empty,
// and otherwise invokes the fallback extractor. This keeps optional-field
// resolution explicit instead of scattering nil checks through the scorers.
func resolveOrExtract(supplied []string, extract func() []string) []string {
	if len(supplied) > 0 {
		return supplied
	}
	return extract()
}

package gemini

// FirstCandidateText exports firstCandidateText for testing.
var FirstCandidateText = firstCandidateText //nolint:gochecknoglobals // test export

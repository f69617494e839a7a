package studymap

import "regexp"

var (
	headingMarks = regexp.MustCompile(`##\s*`)
	boldSpans    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	starMarks    = regexp.MustCompile(`\*`)
	termsSuffix  = regexp.MustCompile(`\(Terms:.*?\)`)
)

// SpeechText strips a study map's markdown for speech synthesis:
// heading marks, bold markers (keeping the inner text), stray
// asterisks, and "(Terms: ...)" vocabulary suffixes.
func SpeechText(markdown string) string {
	text := headingMarks.ReplaceAllString(markdown, "")
	text = boldSpans.ReplaceAllString(text, "$1")
	text = starMarks.ReplaceAllString(text, "")
	text = termsSuffix.ReplaceAllString(text, "")
	return text
}

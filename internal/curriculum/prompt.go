package curriculum

import (
	"fmt"
	"strings"
)

const curriculumSystemPrompt = `You are an expert curriculum designer whose task is to break down a broad subject into logical sections and relevant topics within each section.`

func buildCurriculumUserMessage(subject string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a curriculum for the subject: '%s'\n", subject))

	b.WriteString(`
Instructions:
1. Focus on core concepts and foundational knowledge for the given subject.
2. Provide at least 5 sections, with 4-6 relevant topics per section.
3. Ensure the topics within each section are cohesive.
4. Keep section names short and topic names specific enough to quiz on.`)

	return b.String()
}

package gemini

import (
	"bytes"
	"text/template"
)

// quipPromptTemplate is the fixed instruction template sent to the model.
// The question is embedded verbatim; all style constraints live here.
const quipPromptTemplate = `You are the oracle behind a novelty "ask me anything" widget.
Answer the question below in 5 words or fewer.
Sound completely confident. The answer must be comedically false, misleading, or a non-sequitur.
Return plain text only, with no markdown, quotation marks, or preamble.

Question: {{.Question}}`

// promptData represents the data passed to the prompt template.
type promptData struct {
	Question string
}

var quipPrompt = template.Must(template.New("quip").Parse(quipPromptTemplate))

// BuildPrompt generates the full prompt for the given question.
//
// It is a pure function: output is fully determined by the input, there are
// no side effects, and it is safe to call concurrently. No validation is
// performed here; callers are responsible for rejecting empty questions.
func BuildPrompt(question string) string {
	var buf bytes.Buffer
	// Execute cannot fail: the template only references a string field.
	_ = quipPrompt.Execute(&buf, promptData{Question: question})
	return buf.String()
}

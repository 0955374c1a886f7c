package llm

import "strings"

// resumeExtractionInstruction tells the model exactly which fields to pull
// out of a resume and in what shape. Durations are kept verbatim: the
// duration engine interprets them downstream, so the model must not rewrite
// or normalize them.
const resumeExtractionInstruction = `You are an expert resume parser. Carefully extract structured resume information.
- Extract Name, Mobile, and Email accurately.
- Identify ALL work experiences, including Company, Role, and Duration of employment.
- Copy the Duration text exactly as written in the resume (e.g. "Jan 2019 - Present"); do not reformat it.
- Extract the educational qualification: Degree and Institution.

Return ONLY valid JSON matching this exact structure:
{
  "Name": string,
  "Mobile": string,
  "Email": string,
  "Graduation": {"Degree": string, "Institution": string},
  "Work Experiences": [{"Company": string, "Role": string, "Duration": string}]
}

IMPORTANT:
- Extract information directly from the text, do not invent or summarize.
- Omit a field rather than guessing when the resume does not state it.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// BuildResumeExtractionPrompt constructs the extraction prompt for one
// resume's plain text.
func BuildResumeExtractionPrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString(resumeExtractionInstruction)
	sb.WriteString("\n\nResume text:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

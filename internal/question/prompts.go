package question

import "fmt"

func questionSetPrompt(resumeContext string) string {
	return fmt.Sprintf(`You are an expert interviewer. Create RESUME-SPECIFIC multiple-choice questions strictly about FRONTEND or BACKEND topics that the candidate has experience with.
Use this resume context to ground every question (do not ask generic definitions; reference frameworks, libraries, tools, databases, cloud, patterns or accomplishments from the resume):
%s
Return ONLY a JSON array of 6 items (no prose). Each item must be:
{"text":"...","difficulty":"Easy|Medium|Hard","keywords":["resume terms"],"domain":"frontend"|"backend","options":["...","...","...","..."],"correctIndex":0|1|2|3}
STRICT RULES:
- Exactly 6 items, exactly 4 concise options per item.
- Exactly 2 Easy, 2 Medium, 2 Hard.
- Question text <= 150 chars; options <= 80 chars.
- Each question must be directly related to technologies or work described in the resume and labeled domain as "frontend" or "backend".
- Options must be plausible; exactly one best answer (correctIndex).`, resumeContext)
}

func optionsPrompt(questionText string) string {
	return fmt.Sprintf(`Provide exactly 4 concise, mutually exclusive multiple-choice options for this question. Return ONLY JSON array of 4 strings, no prose. Question: %s`, questionText)
}

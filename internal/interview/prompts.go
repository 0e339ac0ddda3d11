package interview

import (
	"fmt"
	"strings"

	"github.com/hireloop/intervu-backend/internal/model"
)

func answerRubricPrompt(q *model.Question, answer string, timeUsed int) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating a candidate's answer.

Question: %q
Difficulty: %s
Time Limit: %d seconds
Time Used: %d seconds

Candidate's Answer: %q

Evaluate on: technical accuracy and depth, relevance to the question, clarity and structure, use of appropriate terminology, and time management.

Return ONLY JSON, no prose:
{"score": <number 0-100>, "feedback": "<detailed feedback>", "keywords": ["<term>"], "strengths": ["<strength>"], "improvements": ["<improvement>"]}`,
		q.Text, q.Difficulty, q.TimeLimit, timeUsed, answer)
}

func summaryPrompt(sess *model.Session) string {
	var sb strings.Builder
	for i := range sess.Questions {
		q := &sess.Questions[i]
		ans := "No answer"
		if a := sess.AnswerFor(q.ID); a != nil && a.Text != "" {
			ans = a.Text
		}
		fmt.Fprintf(&sb, "Q%d (%s): %s\nA: %s\n\n", i+1, q.Difficulty, q.Text, ans)
	}
	return fmt.Sprintf(`You are an interviewer. Score 0-100 and summarize succinctly.
%s
Return JSON {"overallScore":number, "summary":string}`, sb.String())
}

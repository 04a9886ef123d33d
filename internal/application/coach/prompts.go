// Package coach 实现求职辅导相关的生成服务
package coach

import (
	"fmt"
	"strings"

	"senai-coach-api/internal/domain/entity"
)

// profileSummary 将用户求职画像拼成提示词素材
func profileSummary(user *entity.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Industry: %s\n", user.Industry)
	fmt.Fprintf(&b, "Years of experience: %d\n", user.Experience)
	if len(user.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(user.Skills, ", "))
	}
	if strings.TrimSpace(user.Bio) != "" {
		fmt.Fprintf(&b, "Background: %s\n", strings.TrimSpace(user.Bio))
	}
	return b.String()
}

// buildInsightPrompt 行业洞察提示词。要求只输出 JSON，字段与
// insightPayload 一致。
func buildInsightPrompt(industry string) string {
	return fmt.Sprintf(`Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [{"role": "string", "min": number, "max": number, "median": number, "location": "string"}],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`, industry)
}

// buildQuizPrompt 面试测验提示词。10 道单选题，只输出 JSON。
func buildQuizPrompt(user *entity.User) string {
	skills := ""
	if len(user.Skills) > 0 {
		skills = fmt.Sprintf(" with expertise in %s", strings.Join(user.Skills, ", "))
	}
	return fmt.Sprintf(`Generate 10 technical interview questions for a %s professional%s.

Each question should be multiple choice with 4 options.

Return ONLY the response in this JSON format without any additional text or markdown:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`, user.Industry, skills)
}

// buildTipPrompt 改进建议提示词。输出两句以内的纯文本。
func buildTipPrompt(user *entity.User, wrong []entity.QuestionResult) string {
	var b strings.Builder
	for _, r := range wrong {
		fmt.Fprintf(&b, "Question: \"%s\"\nCorrect Answer: \"%s\"\nUser Answer: \"%s\"\n\n", r.Question, r.CorrectAnswer, r.UserAnswer)
	}
	return fmt.Sprintf(`The user got the following %s technical interview questions wrong:

%s
Based on these mistakes, provide a concise, specific improvement tip.
Focus on the knowledge gaps revealed by these wrong answers.
Keep the response under 2 sentences and make it encouraging.
Don't explicitly mention the mistakes, instead focus on what to learn/practice.`, user.Industry, b.String())
}

// buildResumeImprovePrompt 简历片段润色提示词。输出单段纯文本。
func buildResumeImprovePrompt(user *entity.User, section, current string) string {
	return fmt.Sprintf(`As an expert resume writer, improve the following %s description for a %s professional.
Make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`, section, user.Industry, current)
}

// buildCoverLetterPrompt 求职信提示词。输出 Markdown。
func buildCoverLetterPrompt(user *entity.User, companyName, jobTitle, jobDescription string) string {
	return fmt.Sprintf(`Write a professional cover letter for a %s position at %s.

About the candidate:
%s
Job Description:
%s

Requirements:
1. Use a professional, enthusiastic tone
2. Highlight relevant skills and experience
3. Show understanding of the company's needs
4. Keep it concise (max 400 words)
5. Use proper business letter formatting in markdown
6. Include specific examples of achievements
7. Relate candidate's background to job requirements

Format the letter in markdown.`, jobTitle, companyName, profileSummary(user), jobDescription)
}

package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeParsingPrompt creates the prompt that turns raw resume
// text into the structured analysis JSON.
func (pb *PromptBuilder) BuildResumeParsingPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume analyzer specialized in extracting structured information from resumes.

Carefully analyze this resume text and extract all relevant information in a structured format:

%s

Return ONLY the JSON response with no additional explanation. Follow this exact structure:
{
    "personal_info": {
        "name": "string",
        "contact": "string",
        "location": "string"
    },
    "skills": ["skill1", "skill2", ...],
    "education": [
        {
            "degree": "string",
            "institution": "string",
            "year": "string"
        }
    ],
    "experience": [
        {
            "position": "string",
            "company": "string",
            "duration": "string",
            "responsibilities": ["string", ...],
            "achievements": ["string", ...]
        }
    ],
    "projects": [
        {
            "name": "string",
            "description": "string",
            "technologies": ["string", ...]
        }
    ],
    "certifications": ["string", ...],
    "keywords": ["string", ...]
}

Be comprehensive and accurate. Parse all relevant information but structure it carefully.`, resumeText)
}

// BuildJobRecommendationPrompt creates the prompt that turns a parsed
// analysis into recommended roles and search keywords.
func (pb *PromptBuilder) BuildJobRecommendationPrompt(analysisJSON string) string {
	return fmt.Sprintf(`You are a career advisor and job matching expert. Based on the following parsed resume information, recommend the top 10 job positions that would be the best match for this candidate.

Resume data:
%s

For each recommended job position, provide:
1. Job title/role
2. Required skills and how they match the candidate's profile
3. Industry
4. Suggested job level (entry, mid, senior)
5. Keywords to search for matching job postings

Return ONLY the JSON response with no additional explanation. Follow this exact structure:
{
    "job_recommendations": [
        {
            "title": "string",
            "matching_skills": ["string", ...],
            "industry": "string",
            "level": "string",
            "search_keywords": ["string", ...]
        }
    ]
}`, analysisJSON)
}

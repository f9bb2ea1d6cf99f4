package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/internal/models"
)

func TestAnalyzeResume_ParsesStructuredResponse(t *testing.T) {
	gem := &fakeGemini{responses: []string{`{
		"personal_info": {"name": "Jane Doe", "contact": "jane@example.com", "location": "Boston, MA"},
		"skills": ["Go", "PostgreSQL"],
		"education": [{"degree": "BSc", "institution": "MIT", "year": "2019"}],
		"experience": [{"position": "Engineer", "company": "Acme", "duration": "3 years"}],
		"keywords": ["backend", "distributed systems"]
	}`}}

	a := NewAnalyzerService(gem, 3)
	analysis, err := a.AnalyzeResume(context.Background(), "Jane Doe. Backend engineer...")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", analysis.PersonalInfo.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, analysis.Skills)
	assert.Equal(t, "MIT", analysis.Education[0].Institution)
	assert.Contains(t, gem.prompts[0], "Jane Doe. Backend engineer")
}

func TestAnalyzeResume_HandlesMarkdownFencedResponse(t *testing.T) {
	gem := &fakeGemini{responses: []string{"Here is the analysis:\n```json\n{\"skills\": [\"Go\"]}\n```\nDone."}}

	a := NewAnalyzerService(gem, 3)
	analysis, err := a.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, analysis.Skills)
}

func TestAnalyzeResume_GenerationErrorPropagates(t *testing.T) {
	gem := &fakeGemini{textErr: errors.New("model overloaded")}

	a := NewAnalyzerService(gem, 3)
	_, err := a.AnalyzeResume(context.Background(), "resume text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume analysis")
}

func TestAnalyzeResume_InvalidJSONResponse(t *testing.T) {
	gem := &fakeGemini{responses: []string{"I could not parse this resume, sorry."}}

	a := NewAnalyzerService(gem, 3)
	_, err := a.AnalyzeResume(context.Background(), "resume text")
	require.Error(t, err)
}

func TestRecommendJobs(t *testing.T) {
	gem := &fakeGemini{responses: []string{`{
		"job_recommendations": [
			{"title": "Backend Engineer", "matching_skills": ["Go"], "industry": "Tech", "level": "Senior", "search_keywords": ["golang", "microservices"]},
			{"title": "Platform Engineer", "search_keywords": ["kubernetes"]}
		]
	}`}}

	a := NewAnalyzerService(gem, 3)
	recs, err := a.RecommendJobs(context.Background(), &models.ResumeAnalysis{Skills: []string{"Go"}})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "Backend Engineer", recs[0].Title)
	assert.Equal(t, []string{"golang", "microservices"}, recs[0].SearchKeywords)
	assert.Contains(t, gem.prompts[0], `"skills":["Go"]`)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced object", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"object with prose around it", "Sure! {\"a\": 1} Hope that helps.", `{"a": 1}`},
		{"bare array", `[1, 2]`, `[1, 2]`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"resumatch/internal/models"
)

// AnalyzerService runs the LLM chains that turn raw resume text into a
// structured analysis and job recommendations.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error)
	RecommendJobs(ctx context.Context, analysis *models.ResumeAnalysis) ([]models.JobRecommendation, error)
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAnalyzerService(geminiService GeminiService, maxRetries int) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// AnalyzeResume implements AnalyzerService.
func (a *analyzerService) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error) {
	prompt := a.promptBuilder.BuildResumeParsingPrompt(resumeText)

	log.Printf("📝 Resume parsing prompt length: %d characters", len(prompt))

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.2, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume analysis: %w", err)
	}

	var analysis models.ResumeAnalysis
	if err := parseJSONResponse(response, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse resume analysis response: %w", err)
	}

	return &analysis, nil
}

// RecommendJobs implements AnalyzerService.
func (a *analyzerService) RecommendJobs(ctx context.Context, analysis *models.ResumeAnalysis) ([]models.JobRecommendation, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	prompt := a.promptBuilder.BuildJobRecommendationPrompt(string(analysisJSON))

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate job recommendations: %w", err)
	}

	var result struct {
		JobRecommendations []models.JobRecommendation `json:"job_recommendations"`
	}
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse job recommendations response: %w", err)
	}

	return result.JobRecommendations, nil
}

func parseJSONResponse(response string, target interface{}) error {
	// Try to extract JSON from response (LLM might wrap it in markdown)
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w\nResponse: %s", err, response)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

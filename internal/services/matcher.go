package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"resumatch/internal/models"
	"resumatch/internal/repositories"
)

// MatchService searches the ingested job corpus for postings matching
// an analyzed resume and scores each one 0-100.
type MatchService interface {
	FindMatches(ctx context.Context, analysis *models.ResumeAnalysis, recs []models.JobRecommendation, limit int) ([]models.JobListing, error)
}

type matchService struct {
	jobRepo       repositories.JobRepository
	geminiService GeminiService
	qdrantService QdrantService
	vectorWeight  float64
}

func NewMatchService(
	jobRepo repositories.JobRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	vectorWeight float64,
) MatchService {
	if vectorWeight < 0 || vectorWeight > 1 {
		vectorWeight = 0.6
	}
	return &matchService{
		jobRepo:       jobRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		vectorWeight:  vectorWeight,
	}
}

// FindMatches implements MatchService.
func (m *matchService) FindMatches(ctx context.Context, analysis *models.ResumeAnalysis, recs []models.JobRecommendation, limit int) ([]models.JobListing, error) {
	if limit <= 0 {
		limit = 10
	}

	queryText := buildMatchQuery(analysis, recs)

	embedding, err := m.geminiService.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	// Over-fetch: several chunks of the same job may hit.
	hits, err := m.qdrantService.SearchJobs(ctx, embedding, limit*4)
	if err != nil {
		return nil, fmt.Errorf("failed to search job collection: %w", err)
	}

	vectorScores := dedupeHits(hits)

	var jobs []models.Job
	if len(vectorScores) > 0 {
		ids := make([]uuid.UUID, 0, len(vectorScores))
		for jobID := range vectorScores {
			id, err := uuid.Parse(jobID)
			if err != nil {
				log.Printf("⚠️  Skipping hit with invalid job id %q\n", jobID)
				continue
			}
			ids = append(ids, id)
		}

		jobs, err = m.jobRepo.FindByIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load matched jobs: %w", err)
		}
	} else {
		// Empty collection. Fall back to keyword scoring over the most
		// recent postings so a fresh deployment still returns matches.
		log.Println("⚠️  No vector hits, falling back to keyword matching")
		jobs, err = m.jobRepo.FindRecent(limit * 2)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent jobs: %w", err)
		}
	}

	terms := matchTerms(analysis, recs)

	listings := make([]models.JobListing, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]

		vecScore := float64(vectorScores[job.ID.String()])
		kwScore := scoreKeywordOverlap(job, terms)

		var blended float64
		if len(vectorScores) > 0 {
			blended = m.vectorWeight*vecScore + (1-m.vectorWeight)*kwScore
		} else {
			blended = kwScore
		}

		listings = append(listings, models.JobListing{
			ID:          job.ID.String(),
			Title:       job.Title,
			Company:     job.Company,
			CompanyLogo: job.CompanyLogo,
			Location:    job.Location,
			Mode:        job.Mode,
			Description: job.Description,
			MatchScore:  toPercent(blended),
			URL:         job.URL,
		})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].MatchScore > listings[j].MatchScore
	})

	if len(listings) > limit {
		listings = listings[:limit]
	}

	return listings, nil
}

// dedupeHits keeps the best chunk score per job.
func dedupeHits(hits []JobHit) map[string]float32 {
	best := make(map[string]float32, len(hits))
	for _, hit := range hits {
		if hit.JobID == "" {
			continue
		}
		if score, ok := best[hit.JobID]; !ok || hit.Score > score {
			best[hit.JobID] = hit.Score
		}
	}
	return best
}

func buildMatchQuery(analysis *models.ResumeAnalysis, recs []models.JobRecommendation) string {
	var parts []string

	if len(analysis.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(analysis.Skills, ", "))
	}
	if len(analysis.Keywords) > 0 {
		parts = append(parts, "Keywords: "+strings.Join(analysis.Keywords, ", "))
	}
	for _, exp := range analysis.Experience {
		parts = append(parts, exp.Position+" at "+exp.Company)
	}
	for _, rec := range recs {
		parts = append(parts, rec.Title)
		if len(rec.SearchKeywords) > 0 {
			parts = append(parts, strings.Join(rec.SearchKeywords, ", "))
		}
	}

	return strings.Join(parts, "\n")
}

// matchTerms collects the lowercase terms used for keyword overlap.
func matchTerms(analysis *models.ResumeAnalysis, recs []models.JobRecommendation) []string {
	seen := make(map[string]bool)
	var terms []string

	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, s := range analysis.Skills {
		add(s)
	}
	for _, k := range analysis.Keywords {
		add(k)
	}
	for _, rec := range recs {
		for _, k := range rec.SearchKeywords {
			add(k)
		}
	}

	return terms
}

// scoreKeywordOverlap returns the fraction of terms that appear in the
// job text, neutral when there is nothing to match against.
func scoreKeywordOverlap(job *models.Job, terms []string) float64 {
	if len(terms) == 0 {
		return 0.5
	}

	text := strings.ToLower(job.SearchText())
	matched := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			matched++
		}
	}

	return float64(matched) / float64(len(terms))
}

func toPercent(score float64) int {
	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

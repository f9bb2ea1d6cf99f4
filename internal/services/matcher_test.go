package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/internal/models"
)

type fakeGemini struct {
	embedding    []float32
	embeddingErr error
	responses    []string
	textErr      error
	calls        int
	prompts      []string
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return f.embedding, f.embeddingErr
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f.GenerateTextWithRetry(ctx, prompt, temperature, 1)
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.textErr != nil {
		return "", f.textErr
	}
	if f.calls >= len(f.responses) {
		return "", errors.New("no canned response left")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

type fakeQdrant struct {
	hits      []JobHit
	searchErr error
}

func (f *fakeQdrant) InitCollection() error { return nil }

func (f *fakeQdrant) UpsertJobChunk(ctx context.Context, jobID string, chunkIndex int, text string, embedding []float32) error {
	return nil
}

func (f *fakeQdrant) SearchJobs(ctx context.Context, queryEmbedding []float32, limit int) ([]JobHit, error) {
	return f.hits, f.searchErr
}

func (f *fakeQdrant) DeleteJob(ctx context.Context, jobID string) error { return nil }

type fakeJobRepo struct {
	jobs   map[uuid.UUID]models.Job
	recent []models.Job
}

func (f *fakeJobRepo) Create(job *models.Job) error { return nil }

func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return &job, nil
}

func (f *fakeJobRepo) FindByIDs(ids []uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if job, ok := f.jobs[id]; ok {
			out = append(out, job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindRecent(limit int) ([]models.Job, error) {
	if limit > len(f.recent) {
		limit = len(f.recent)
	}
	return f.recent[:limit], nil
}

func (f *fakeJobRepo) Count() (int64, error) { return int64(len(f.jobs)), nil }

func testJob(title, description string) models.Job {
	return models.Job{
		ID:          uuid.New(),
		Title:       title,
		Company:     "Acme",
		Description: description,
		URL:         "https://example.com/" + title,
	}
}

func goAnalysis() *models.ResumeAnalysis {
	return &models.ResumeAnalysis{
		Skills:   []string{"Go", "PostgreSQL"},
		Keywords: []string{"backend"},
	}
}

func TestFindMatches_OrdersByScoreAndTruncates(t *testing.T) {
	strong := testJob("Backend Engineer", "Go and PostgreSQL backend services")
	weak := testJob("Product Manager", "roadmaps and stakeholders")
	mid := testJob("Platform Engineer", "Go infrastructure")

	repo := &fakeJobRepo{jobs: map[uuid.UUID]models.Job{
		strong.ID: strong,
		weak.ID:   weak,
		mid.ID:    mid,
	}}
	qd := &fakeQdrant{hits: []JobHit{
		{JobID: strong.ID.String(), Score: 0.9},
		{JobID: weak.ID.String(), Score: 0.3},
		{JobID: mid.ID.String(), Score: 0.7},
	}}
	gem := &fakeGemini{embedding: []float32{0.1, 0.2}}

	m := NewMatchService(repo, gem, qd, 0.6)
	listings, err := m.FindMatches(context.Background(), goAnalysis(), nil, 2)
	require.NoError(t, err)

	require.Len(t, listings, 2)
	assert.Equal(t, "Backend Engineer", listings[0].Title)
	assert.Greater(t, listings[0].MatchScore, listings[1].MatchScore)
}

func TestFindMatches_ScoresAreClampedPercentages(t *testing.T) {
	job := testJob("Backend Engineer", "Go PostgreSQL backend everything matches")
	repo := &fakeJobRepo{jobs: map[uuid.UUID]models.Job{job.ID: job}}
	qd := &fakeQdrant{hits: []JobHit{{JobID: job.ID.String(), Score: 1.0}}}
	gem := &fakeGemini{embedding: []float32{0.1}}

	m := NewMatchService(repo, gem, qd, 0.6)
	listings, err := m.FindMatches(context.Background(), goAnalysis(), nil, 5)
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.GreaterOrEqual(t, listings[0].MatchScore, 0)
	assert.LessOrEqual(t, listings[0].MatchScore, 100)
}

func TestFindMatches_DedupesChunkHitsPerJob(t *testing.T) {
	job := testJob("Backend Engineer", "Go services")
	repo := &fakeJobRepo{jobs: map[uuid.UUID]models.Job{job.ID: job}}
	qd := &fakeQdrant{hits: []JobHit{
		{JobID: job.ID.String(), Score: 0.4},
		{JobID: job.ID.String(), Score: 0.8},
		{JobID: job.ID.String(), Score: 0.6},
	}}
	gem := &fakeGemini{embedding: []float32{0.1}}

	m := NewMatchService(repo, gem, qd, 1.0)
	listings, err := m.FindMatches(context.Background(), goAnalysis(), nil, 10)
	require.NoError(t, err)

	require.Len(t, listings, 1, "chunks of the same job collapse to one listing")
	assert.Equal(t, 80, listings[0].MatchScore, "best chunk score wins")
}

func TestFindMatches_KeywordFallbackWhenNoVectorHits(t *testing.T) {
	goJob := testJob("Backend Engineer", "Go and PostgreSQL services")
	pmJob := testJob("Product Manager", "roadmaps")

	repo := &fakeJobRepo{recent: []models.Job{pmJob, goJob}}
	qd := &fakeQdrant{}
	gem := &fakeGemini{embedding: []float32{0.1}}

	m := NewMatchService(repo, gem, qd, 0.6)
	listings, err := m.FindMatches(context.Background(), goAnalysis(), nil, 10)
	require.NoError(t, err)

	require.Len(t, listings, 2)
	assert.Equal(t, "Backend Engineer", listings[0].Title)
	assert.Greater(t, listings[0].MatchScore, listings[1].MatchScore)
}

func TestFindMatches_EmbeddingErrorPropagates(t *testing.T) {
	m := NewMatchService(&fakeJobRepo{}, &fakeGemini{embeddingErr: errors.New("quota exceeded")}, &fakeQdrant{}, 0.6)

	_, err := m.FindMatches(context.Background(), goAnalysis(), nil, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query embedding")
}

func TestFindMatches_RecommendationKeywordsInfluenceScore(t *testing.T) {
	job := testJob("Site Reliability Engineer", "kubernetes terraform on-call")
	repo := &fakeJobRepo{jobs: map[uuid.UUID]models.Job{job.ID: job}}
	qd := &fakeQdrant{hits: []JobHit{{JobID: job.ID.String(), Score: 0.5}}}
	gem := &fakeGemini{embedding: []float32{0.1}}

	recs := []models.JobRecommendation{
		{Title: "SRE", SearchKeywords: []string{"kubernetes", "terraform"}},
	}

	m := NewMatchService(repo, gem, qd, 0.0) // keyword-only blend
	withRecs, err := m.FindMatches(context.Background(), &models.ResumeAnalysis{}, recs, 10)
	require.NoError(t, err)
	require.Len(t, withRecs, 1)
	assert.Equal(t, 100, withRecs[0].MatchScore)
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 0, toPercent(-0.5))
	assert.Equal(t, 0, toPercent(0))
	assert.Equal(t, 50, toPercent(0.5))
	assert.Equal(t, 100, toPercent(1))
	assert.Equal(t, 100, toPercent(1.7))
}

func TestScoreKeywordOverlap(t *testing.T) {
	job := testJob("Backend Engineer", "Go and PostgreSQL services")

	assert.Equal(t, 0.5, scoreKeywordOverlap(&job, nil), "neutral with no terms")
	assert.Equal(t, 1.0, scoreKeywordOverlap(&job, []string{"go", "postgresql"}))
	assert.Equal(t, 0.5, scoreKeywordOverlap(&job, []string{"go", "rust"}))
	assert.Equal(t, 0.0, scoreKeywordOverlap(&job, []string{"cobol"}))
}

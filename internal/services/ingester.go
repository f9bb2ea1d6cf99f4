package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"resumatch/internal/repositories"
)

// Ingester embeds job postings and upserts them into the vector
// collection with a bounded pool of workers.
type Ingester interface {
	Start(ctx context.Context)
	Enqueue(jobID uuid.UUID)
	// Wait drains the queue and blocks until all workers finish.
	Wait()
}

type ingester struct {
	jobRepo       repositories.JobRepository
	geminiService GeminiService
	qdrantService QdrantService
	chunker       TextChunker
	chunkSize     int
	chunkOverlap  int
	concurrency   int
	jobQueue      chan uuid.UUID
	wg            sync.WaitGroup
}

func NewIngester(
	jobRepo repositories.JobRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	concurrency int,
	chunkSize int,
	chunkOverlap int,
) Ingester {
	if concurrency <= 0 {
		concurrency = 3
	}
	return &ingester{
		jobRepo:       jobRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		chunker:       NewTextChunker(),
		chunkSize:     chunkSize,
		chunkOverlap:  chunkOverlap,
		concurrency:   concurrency,
		jobQueue:      make(chan uuid.UUID, 100),
	}
}

// Start implements Ingester.
func (in *ingester) Start(ctx context.Context) {
	log.Printf("🚀 Starting ingester with %d workers\n", in.concurrency)

	for i := 0; i < in.concurrency; i++ {
		in.wg.Add(1)
		go in.processJobs(ctx, i+1)
	}
}

// Enqueue implements Ingester.
func (in *ingester) Enqueue(jobID uuid.UUID) {
	in.jobQueue <- jobID
}

// Wait implements Ingester.
func (in *ingester) Wait() {
	close(in.jobQueue)
	in.wg.Wait()
}

func (in *ingester) processJobs(ctx context.Context, workerID int) {
	defer in.wg.Done()

	for jobID := range in.jobQueue {
		select {
		case <-ctx.Done():
			log.Printf("👷 Ingest worker #%d stopped: %v\n", workerID, ctx.Err())
			return
		default:
		}

		if err := in.ingestJob(ctx, jobID); err != nil {
			log.Printf("❌ Worker #%d failed to ingest job %s: %v\n", workerID, jobID, err)
		} else {
			log.Printf("✅ Worker #%d ingested job %s\n", workerID, jobID)
		}
	}
}

func (in *ingester) ingestJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := in.jobRepo.FindByID(jobID)
	if err != nil {
		return err
	}

	chunks := in.chunker.ChunkText(job.SearchText(), in.chunkSize, in.chunkOverlap)

	for i, chunk := range chunks {
		embedding, err := in.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return err
		}

		if err := in.qdrantService.UpsertJobChunk(ctx, job.ID.String(), i, chunk, embedding); err != nil {
			return err
		}
	}

	return nil
}

package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"resumatch/internal/config"
	"resumatch/internal/models"
	"resumatch/internal/repositories"
	"resumatch/internal/services"
)

// seedJob is one entry of the seed file. The field names match the
// jobs table columns.
type seedJob struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	CompanyLogo  string `json:"company_logo"`
	Location     string `json:"location"`
	Mode         string `json:"mode"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	URL          string `json:"url"`
}

func main() {
	log.Println("🚀 Starting job corpus ingestion...")

	seedPath := "./seed/jobs.json"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	jobRepo := repositories.NewJobRepository(db)

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	// Load seed file
	data, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file %s: %v", seedPath, err)
	}

	var seeds []seedJob
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("❌ Failed to parse seed file: %v", err)
	}

	log.Printf("📋 Loaded %d jobs from %s\n", len(seeds), seedPath)

	// Insert rows and enqueue for embedding
	ingester := services.NewIngester(
		jobRepo,
		geminiService,
		qdrantService,
		cfg.Ingest.Concurrency,
		cfg.Ingest.ChunkSize,
		cfg.Ingest.ChunkOverlap,
	)

	ctx := context.Background()
	ingester.Start(ctx)

	successCount := 0
	failCount := 0

	for _, seed := range seeds {
		job := &models.Job{
			ID:           uuid.New(),
			Title:        seed.Title,
			Company:      seed.Company,
			CompanyLogo:  seed.CompanyLogo,
			Location:     seed.Location,
			Mode:         seed.Mode,
			Description:  seed.Description,
			Requirements: seed.Requirements,
			URL:          seed.URL,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := jobRepo.Create(job); err != nil {
			log.Printf("❌ Failed to store job %q: %v\n", seed.Title, err)
			failCount++
			continue
		}

		ingester.Enqueue(job.ID)
		successCount++
	}

	// Drain the queue before reporting
	ingester.Wait()

	log.Printf("\n✅ Ingestion complete: %d stored, %d failed\n", successCount, failCount)

	total, err := jobRepo.Count()
	if err == nil {
		log.Printf("📊 Job corpus now holds %d postings\n", total)
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/internal/models"
	"resumatch/internal/repositories"
	"resumatch/internal/services"
)

type UploadHandler struct {
	docRepo         repositories.DocumentRepository
	analysisRepo    repositories.AnalysisRepository
	storageService  services.StorageService
	extractor       services.ExtractorService
	analyzerService services.AnalyzerService
	matchService    services.MatchService
	maxFileSize     int64
	topJobs         int
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	storageService services.StorageService,
	extractor services.ExtractorService,
	analyzerService services.AnalyzerService,
	matchService services.MatchService,
	maxFileSize int64,
	topJobs int,
) *UploadHandler {
	return &UploadHandler{
		docRepo:         docRepo,
		analysisRepo:    analysisRepo,
		storageService:  storageService,
		extractor:       extractor,
		analyzerService: analyzerService,
		matchService:    matchService,
		maxFileSize:     maxFileSize,
		topJobs:         topJobs,
	}
}

// HandleUploadResume handles POST /api/upload-resume. The whole
// pipeline runs synchronously: the response carries the analysis and
// the matched listings.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Send the resume as multipart field 'file'.")
	}

	if fileHeader.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, "File too large")
	}

	if !hasAllowedExtension(fileHeader.Filename) {
		return fiber.NewError(fiber.StatusBadRequest, "Only PDF and DOCX files are allowed")
	}

	// Persist the raw upload first so failed analyses stay debuggable.
	filename, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save uploaded file")
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: fileHeader.Filename,
		FileExt:          lowerExt(fileHeader.Filename),
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save document record")
	}

	resumeText, err := h.extractor.ExtractText(filePath)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not extract text from the resume")
	}

	if len(resumeText) < services.MinResumeTextLen {
		return fiber.NewError(fiber.StatusBadRequest, "Could not extract sufficient text from the resume")
	}

	ctx := c.Context()

	log.Printf("🤖 Analyzing resume %s...\n", doc.ID)
	analysis, err := h.analyzerService.AnalyzeResume(ctx, resumeText)
	if err != nil {
		log.Printf("❌ Resume analysis failed for %s: %v\n", doc.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error processing resume")
	}

	recs, err := h.analyzerService.RecommendJobs(ctx, analysis)
	if err != nil {
		// Recommendations refine the match query. Matching still works
		// from the analysis alone, so keep going.
		log.Printf("⚠️  Job recommendation chain failed for %s: %v\n", doc.ID, err)
		recs = nil
	}

	log.Printf("🔍 Searching job matches for %s...\n", doc.ID)
	listings, err := h.matchService.FindMatches(ctx, analysis, recs, h.topJobs)
	if err != nil {
		log.Printf("❌ Job matching failed for %s: %v\n", doc.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error matching jobs")
	}

	response := models.UploadResumeResponse{
		ResumeAnalysis: *analysis,
		JobListings:    listings,
	}

	if raw, err := json.Marshal(response); err == nil {
		record := &models.Analysis{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			RawJSON:    string(raw),
			MatchCount: len(listings),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := h.analysisRepo.Create(record); err != nil {
			log.Printf("⚠️  Failed to persist analysis for %s: %v\n", doc.ID, err)
		}
	}

	return c.JSON(response)
}

func hasAllowedExtension(filename string) bool {
	switch lowerExt(filename) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

func lowerExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

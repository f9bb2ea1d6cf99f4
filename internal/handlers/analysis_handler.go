package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/internal/repositories"
)

type AnalysisHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewAnalysisHandler(analysisRepo repositories.AnalysisRepository) *AnalysisHandler {
	return &AnalysisHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetAnalysis handles GET /api/analyses/:id, where id is the
// document id returned alongside an upload. Replays the stored
// response body for that document's latest analysis.
func (h *AnalysisHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	idParam := c.Params("id")
	docID, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document ID format")
	}

	analysis, err := h.analysisRepo.FindByDocumentID(docID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Analysis not found")
	}

	var stored json.RawMessage
	if err := json.Unmarshal([]byte(analysis.RawJSON), &stored); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Stored analysis is unreadable")
	}

	return c.JSON(fiber.Map{
		"id":          analysis.ID.String(),
		"document_id": analysis.DocumentID.String(),
		"created_at":  analysis.CreatedAt,
		"result":      stored,
	})
}

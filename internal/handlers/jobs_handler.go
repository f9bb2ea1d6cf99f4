package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/internal/repositories"
)

type JobsHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobsHandler(jobRepo repositories.JobRepository) *JobsHandler {
	return &JobsHandler{
		jobRepo: jobRepo,
	}
}

// HandleListJobs handles GET /api/jobs.
func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	jobs, err := h.jobRepo.FindRecent(limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list jobs")
	}

	total, err := h.jobRepo.Count()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count jobs")
	}

	return c.JSON(fiber.Map{
		"total": total,
		"jobs":  jobs,
	})
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is one posting in the ingested corpus the matcher searches.
type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Company      string    `gorm:"type:text;not null" json:"company"`
	CompanyLogo  string    `gorm:"type:text" json:"company_logo"`
	Location     string    `gorm:"type:text" json:"location"`
	Mode         string    `gorm:"type:text" json:"mode"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	URL          string    `gorm:"type:text" json:"url"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// SearchText is the text that gets chunked and embedded for a job.
func (j *Job) SearchText() string {
	return j.Title + " at " + j.Company + ". " + j.Description + " " +
		j.Requirements + " Location: " + j.Location + ". Mode: " + j.Mode + "."
}

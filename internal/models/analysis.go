package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis stores the result of one resume analysis run, serialized as
// the same JSON the API returned to the client.
type Analysis struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	RawJSON    string    `gorm:"type:text" json:"raw_json"`
	MatchCount int       `gorm:"not null;default:0" json:"match_count"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}

package models

// Wire types for POST /api/upload-resume. Field names follow the JSON
// contract consumed by clients, so they must stay stable.

type PersonalInfo struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Location string `json:"location"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// ResumeAnalysis is the structured extraction produced by the LLM from
// the uploaded resume text.
type ResumeAnalysis struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	Skills         []string     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Projects       []Project    `json:"projects,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Keywords       []string     `json:"keywords,omitempty"`
}

// JobListing is one matched posting with its computed score.
type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	CompanyLogo string `json:"company_logo"`
	Location    string `json:"location"`
	Mode        string `json:"mode"`
	Description string `json:"description,omitempty"`
	MatchScore  int    `json:"match_score"`
	URL         string `json:"url"`
}

// UploadResumeResponse is the success body of POST /api/upload-resume.
type UploadResumeResponse struct {
	ResumeAnalysis ResumeAnalysis `json:"resume_analysis"`
	JobListings    []JobListing   `json:"job_listings"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// JobRecommendation is an intermediate result of the recommendation
// chain, used to build the match query.
type JobRecommendation struct {
	Title          string   `json:"title"`
	MatchingSkills []string `json:"matching_skills"`
	Industry       string   `json:"industry"`
	Level          string   `json:"level"`
	SearchKeywords []string `json:"search_keywords"`
}

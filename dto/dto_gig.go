package dto

import "time"

// CreateGigRequest is the company posting payload.
type CreateGigRequest struct {
	GigTitle               string   `json:"gigTitle"`
	Category               string   `json:"category"`
	Description            string   `json:"description"`
	Duration               string   `json:"duration"`
	Stipend                string   `json:"stipend"`
	Location               string   `json:"location"`
	RequiredSkills         []string `json:"requiredSkills"`
	RequiredExperience     string   `json:"requiredExperience"`
	NumberOfPositions      int      `json:"numberOfPositions"`
	AdditionalRequirements string   `json:"additionalRequirements"`
	ApplicationDeadline    string   `json:"applicationDeadline"`
}

// GigView is the public listing shape (no applicants).
type GigView struct {
	ID                  string    `json:"id"`
	GigTitle            string    `json:"gigTitle"`
	Company             string    `json:"company,omitempty"`
	Category            string    `json:"category,omitempty"`
	Description         string    `json:"description,omitempty"`
	Duration            string    `json:"duration,omitempty"`
	Stipend             string    `json:"stipend,omitempty"`
	Location            string    `json:"location,omitempty"`
	RequiredSkills      []string  `json:"requiredSkills,omitempty"`
	RequiredExperience  string    `json:"requiredExperience,omitempty"`
	NumberOfPositions   int       `json:"numberOfPositions,omitempty"`
	ApplicationDeadline string    `json:"applicationDeadline,omitempty"`
	DatePosted          time.Time `json:"datePosted,omitempty"`
	Status              string    `json:"status"`
}

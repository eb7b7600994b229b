package dto

// ProfileResponse is the trimmed profile projection for the logged-in student.
type ProfileResponse struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Skills      []string `json:"skills"`
	Gender      string   `json:"gender"`
	DateOfBirth string   `json:"dateOfBirth"`
	Phone       string   `json:"phone"`
	Education   string   `json:"education"`
}

// UpdateProfileRequest carries the editable profile fields. Pointers so the
// handler can tell "not sent" apart from "cleared".
type UpdateProfileRequest struct {
	Name        *string   `json:"name"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Skills      *[]string `json:"skills"`
	Gender      *string   `json:"gender"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Phone       *string   `json:"phone"`
	Education   *string   `json:"education"`
}

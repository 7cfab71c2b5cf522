package model

// ContactSubmission is a visitor message from the contact form.
// Email validation is limited to requiring an "@".
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Email   string `json:"email" validate:"required,contains=@,max=255"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

// ContactResponse acknowledges a contact submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

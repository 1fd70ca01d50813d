package models

// ContactMessage is a persisted contact-form submission. Email relay happens
// after the row is durably stored, so a failed send never loses the message.
type ContactMessage struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// NewsletterSubscriber is a lead-capture row, unique by normalized email.
type NewsletterSubscriber struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
}

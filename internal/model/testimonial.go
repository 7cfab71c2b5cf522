package model

import "time"

// Testimonial is a client review displayed on the site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTestimonialRequest is the DTO for the public testimonial submission.
// The id is generated by the client.
type CreateTestimonialRequest struct {
	ID       string `json:"id" validate:"required,notblank,max=64"`
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Location string `json:"location" validate:"required,notblank,max=255"`
	Rating   *int   `json:"rating" validate:"required,gte=1,lte=5"`
	Quote    string `json:"quote" validate:"required,notblank,max=2000"`
}

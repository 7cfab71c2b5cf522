package service

import "errors"

var (
	// ErrInvalidRequest is returned when request data is invalid or incomplete
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidSlots is returned when a promo slot count does not fit the stored column
	ErrInvalidSlots = errors.New("slots must be between 0 and 2147483647")

	// ErrPromoStatusExists is returned when a month's promo record was created concurrently
	ErrPromoStatusExists = errors.New("promo status already exists")

	// ErrUnknownService is returned when a service id is not in the catalog
	ErrUnknownService = errors.New("unknown serviceId")

	// ErrTestimonialExists is returned when a testimonial id is already taken
	ErrTestimonialExists = errors.New("testimonial already exists")

	// ErrTestimonialNotFound is returned when deleting a testimonial that does not exist
	ErrTestimonialNotFound = errors.New("testimonial not found")

	// ErrUsernameTaken is returned when creating a user with an existing username
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidContact is returned when a contact submission fails validation
	ErrInvalidContact = errors.New("invalid contact submission")

	// ErrUploadsDisabled is returned when image uploads are not configured
	ErrUploadsDisabled = errors.New("image uploads are not configured")
)

package model

// Service is one fixed offering of the business.
type Service struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Pricing     []PricingTier `json:"-"`
}

// ServiceDetail is the public view of a service with its stored content.
type ServiceDetail struct {
	Service
	Images      *ServiceImages `json:"images,omitempty"`
	PromoActive bool           `json:"promoActive"`
	Pricing     []QuotedTier   `json:"pricing"`
}

// Catalog lists every service id the content API accepts, in display order.
// Pricing holds the launch tiers used to seed an empty store.
var Catalog = []Service{
	{
		ID:          "whatsapp-button",
		Title:       "WhatsApp Button Fix",
		Description: "Get your WhatsApp chat button working perfectly across all devices and browsers.",
		Icon:        "MessageCircle",
		Pricing: []PricingTier{
			tier("Standard", 10000, "2-3 days",
				"Full button functionality fix", "Mobile & desktop compatibility", "Cross-browser testing",
				"Click tracking setup", "30-day support"),
			tier("Rush", 15000, "24 hours",
				"Full button functionality fix", "Mobile & desktop compatibility", "Cross-browser testing",
				"Click tracking setup", "Priority support", "Express delivery"),
		},
	},
	{
		ID:          "menu-fix",
		Title:       "Menu Fix",
		Description: "Broken navigation or an unresponsive mobile menu, fixed and made smooth.",
		Icon:        "Menu",
		Pricing: []PricingTier{
			tier("Standard", 12000, "2-3 days",
				"Mobile menu hamburger fix", "Dropdown functionality", "Smooth animations",
				"Cross-device testing", "30-day support"),
			tier("Rush", 18000, "24 hours",
				"Mobile menu hamburger fix", "Dropdown functionality", "Smooth animations",
				"Cross-device testing", "Priority support", "Express delivery"),
		},
	},
	{
		ID:          "form-fix",
		Title:       "Form Fix",
		Description: "Contact, signup and custom forms repaired: submission, validation and e-mail delivery.",
		Icon:        "FileText",
		Pricing: []PricingTier{
			tier("Standard", 15000, "3-4 days",
				"Form submission repair", "Validation logic fix", "Error message setup",
				"Email integration", "Spam protection", "30-day support"),
			tier("Rush", 22000, "24-48 hours",
				"Form submission repair", "Validation logic fix", "Error message setup",
				"Email integration", "Spam protection", "Priority support", "Express delivery"),
		},
	},
	{
		ID:          "visual-overhaul",
		Title:       "Visual Overhaul & CSS Redesign",
		Description: "A modern, responsive redesign of your site's look and feel.",
		Icon:        "Palette",
		Pricing: []PricingTier{
			tier("Basic Redesign", 25000, "5-7 days",
				"Color scheme update", "Typography refresh", "Button & link styling",
				"Spacing improvements", "Mobile responsive fixes", "30-day support"),
			tier("Standard Redesign", 40000, "7-10 days",
				"Complete visual overhaul", "Modern UI components", "Custom animations",
				"Full responsive design", "Performance optimization", "60-day support"),
			tier("Premium Redesign", 60000, "10-14 days",
				"Professional design system", "Advanced animations", "Micro-interactions",
				"Accessibility compliance", "Performance optimization", "SEO improvements", "90-day support"),
			tier("Rush Redesign", 50000, "3-5 days",
				"Complete visual overhaul", "Modern UI components", "Custom animations",
				"Full responsive design", "Priority support", "Express delivery"),
		},
	},
}

// LookupService returns the catalog entry for id.
func LookupService(id string) (Service, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// DefaultTestimonials seed an empty testimonial list.
var DefaultTestimonials = []CreateTestimonialRequest{
	{
		ID:       "1",
		Name:     "Chidinma Okonkwo",
		Location: "Lagos, Nigeria",
		Rating:   intPtr(5),
		Quote:    "My WhatsApp button wasn't working and I was losing customers daily. It was fixed in 24 hours and my conversions are up 40%!",
	},
	{
		ID:       "2",
		Name:     "Emeka Nwosu",
		Location: "Abuja, Nigeria",
		Rating:   intPtr(5),
		Quote:    "The mobile menu on my site was completely broken. Fixed perfectly, and the design is better too.",
	},
	{
		ID:       "3",
		Name:     "Amina Ibrahim",
		Location: "Port Harcourt, Nigeria",
		Rating:   intPtr(5),
		Quote:    "Our contact form wasn't working for weeks. It was repaired and spam protection was added. Great value for money!",
	},
}

func tier(name string, price int, delivery string, features ...string) PricingTier {
	return PricingTier{
		TierName:      name,
		OriginalPrice: intPtr(price),
		DeliveryTime:  delivery,
		Features:      features,
	}
}

func intPtr(i int) *int {
	return &i
}

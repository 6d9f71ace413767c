package catalog

import "github.com/siteforge/siteforge/internal/intent"

// templates is the shipped catalog. Content only; see catalog.go for the
// lookups the pipeline consumes.
var templates = []Template{
	{
		Industry: Plumbing,
		Name:     "Reliable Flow Plumbing",
		Tagline:  "Burst pipe? We're already on the way.",
		Sections: []Section{
			{
				ID:       "hero",
				Title:    "24/7 Emergency Callouts",
				Category: "landing",
				Body:     `<section class="hero"><h1>Reliable Flow Plumbing</h1><p>Licensed, insured, local.</p></section>`,
				Controls: []Control{
					{Label: "Get a quote", Intent: intent.QuoteRequest},
					{Label: "Request a callback", Intent: intent.CallbackRequest},
				},
			},
			{
				ID:       "services",
				Title:    "Services",
				Category: "services",
				Body:     `<section class="services"><ul><li>Blocked drains</li><li>Hot water systems</li><li>Gas fitting</li></ul></section>`,
				Controls: []Control{
					{Label: "Quote this service", Intent: intent.QuoteRequest},
				},
			},
			{
				ID:         "contact",
				Title:      "Contact",
				Category:   "contact",
				Body:       `<section class="contact"><form id="contact-form"><input name="name"/><input name="message"/></form></section>`,
				FormAnchor: "#contact-form",
				FormIntent: intent.ContactMessage,
				Controls: []Control{
					{Label: "Send a message", Intent: intent.ContactMessage},
				},
			},
		},
	},
	{
		Industry: Bakery,
		Name:     "Crumb & Crust",
		Tagline:  "Sourdough worth waking up for.",
		Sections: []Section{
			{
				ID:       "hero",
				Title:    "Fresh Every Morning",
				Category: "landing",
				Body:     `<section class="hero"><h1>Crumb &amp; Crust</h1><p>Baked at dawn, gone by noon.</p></section>`,
				Controls: []Control{
					{Label: "Join the newsletter", Intent: intent.NewsletterSubscribe},
					{Label: "See the gallery", Intent: intent.GalleryOpen},
				},
			},
			{
				ID:         "orders",
				Title:      "Custom Orders",
				Category:   "orders",
				Body:       `<section class="orders"><form id="order-form"><input name="name"/><input name="date"/></form></section>`,
				FormAnchor: "#order-form",
				FormIntent: intent.BookingRequest,
				Controls: []Control{
					{Label: "Book a cake", Intent: intent.BookingRequest},
				},
			},
		},
	},
	{
		Industry: Legal,
		Name:     "Hartley & Moss Attorneys",
		Tagline:  "Straight answers, no billable surprises.",
		Sections: []Section{
			{
				ID:       "hero",
				Title:    "Family & Property Law",
				Category: "landing",
				Body:     `<section class="hero"><h1>Hartley &amp; Moss</h1><p>First consultation free.</p></section>`,
				Controls: []Control{
					{Label: "Book a consultation", Intent: intent.BookingRequest},
					{Label: "Client sign in", Intent: intent.AuthLogin},
				},
			},
			{
				ID:       "contact",
				Title:    "Reach Us",
				Category: "contact",
				Body:     `<section class="contact"><p>Suite 4, 12 Harbour St.</p></section>`,
				Controls: []Control{
					{Label: "Send a message", Intent: intent.ContactMessage},
				},
			},
		},
	},
	{
		Industry: Fitness,
		Name:     "Ironline Strength Club",
		Tagline:  "Stronger every session.",
		Sections: []Section{
			{
				ID:       "hero",
				Title:    "Train With Coaches Who Care",
				Category: "landing",
				Body:     `<section class="hero"><h1>Ironline</h1><p>First week on us.</p></section>`,
				Controls: []Control{
					{Label: "Start free trial", Intent: intent.BookingRequest},
					{Label: "Member sign up", Intent: intent.AuthRegister},
				},
			},
			{
				ID:         "trial",
				Title:      "Free Trial",
				Category:   "signup",
				Body:       `<section class="trial"><form id="trial-form"><input name="name"/><input name="phone"/></form></section>`,
				FormAnchor: "#trial-form",
				FormIntent: intent.BookingRequest,
			},
			{
				ID:       "updates",
				Title:    "Stay In The Loop",
				Category: "landing",
				Body:     `<section class="updates"><p>Monthly programming tips.</p></section>`,
				Controls: []Control{
					{Label: "Subscribe", Intent: intent.NewsletterSubscribe},
				},
			},
		},
	},
}

package services

import (
	"strings"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gosimple/slug"
)

var (
	serviceCategories = []string{"web-development", "mobile-development", "consulting", "design", "marketing", "other"}
	pricingTypes      = []string{"fixed", "hourly", "monthly", "yearly", "custom", "contact"}
	blogCategories    = []string{"technology", "business", "industry-news", "company-updates", "tips", "case-study"}
	departments       = []string{"engineering", "design", "marketing", "sales", "hr", "operations", "management"}
	jobTypes          = []string{"full-time", "part-time", "contract", "internship", "remote"}
	experienceLevels  = []string{"entry-level", "1-3-years", "3-5-years", "5-10-years", "10-plus-years"}
	inquiryTypes      = []string{"general", "service-inquiry", "support", "partnership", "career", "other"}
	budgets           = []string{"under-5k", "5k-10k", "10k-25k", "25k-50k", "50k-100k", "over-100k", "not-specified"}
	timelines         = []string{"asap", "1-month", "2-3-months", "3-6-months", "6-months-plus", "not-specified"}
	contactStatuses   = []string{"new", "in-progress", "responded", "closed"}
)

// CompanyResource describes the company profile resource
func CompanyResource() Resource[models.Company] {
	return Resource[models.Company]{
		Name:        "company",
		Sortable:    map[string]string{"name": "name", "created_at": "created_at"},
		DefaultSort: "id ASC",
		Prepare: func(c *models.Company) {
			c.Name = strings.TrimSpace(c.Name)
			c.Contact.Email = strings.ToLower(strings.TrimSpace(c.Contact.Email))
		},
		Validate: func(c *models.Company) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "name", c.Name)
			if c.Contact.Email != "" && !utils.IsValidEmail(c.Contact.Email) {
				errs.Add("contact.email", "must be a valid email address")
			}
			if c.Contact.Phone != "" && !utils.IsValidPhone(c.Contact.Phone) {
				errs.Add("contact.phone", "must be a valid phone number")
			}
			validateSocialLinks(&errs, "social_media", c.SocialMedia)
			return errs
		},
	}
}

// ServiceResource describes the service offering resource
func ServiceResource() Resource[models.Service] {
	return Resource[models.Service]{
		Name:     "service",
		Defaults: func(item *models.Service) { item.IsActive = true },
		Filters: map[string]string{
			"category":  "category",
			"is_active": "is_active",
		},
		Sortable: map[string]string{
			"order":      "\"order\"",
			"title":      "title",
			"created_at": "created_at",
		},
		DefaultSort: "\"order\" ASC, id ASC",
		Prepare: func(s *models.Service) {
			s.Title = strings.TrimSpace(s.Title)
			if s.PricingType == "" {
				s.PricingType = "contact"
			}
			s.PricingCurrency = strings.ToUpper(strings.TrimSpace(s.PricingCurrency))
			if s.PricingCurrency == "" {
				s.PricingCurrency = "USD"
			}
		},
		Validate: func(s *models.Service) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "title", s.Title)
			utils.RequireString(&errs, "description", s.Description)
			utils.RequireString(&errs, "category", s.Category)
			utils.RequireOneOf(&errs, "category", s.Category, serviceCategories...)
			utils.RequireOneOf(&errs, "pricing_type", s.PricingType, pricingTypes...)
			if s.PricingAmount < 0 {
				errs.Add("pricing_amount", "cannot be negative")
			}
			if !isCurrencyCode(s.PricingCurrency) {
				errs.Add("pricing_currency", "must be a three letter ISO 4217 code")
			}
			if len(s.ShortDescription) > 200 {
				errs.Add("short_description", "cannot exceed 200 characters")
			}
			return errs
		},
	}
}

// TeamResource describes the team member resource
func TeamResource() Resource[models.TeamMember] {
	return Resource[models.TeamMember]{
		Name:     "team member",
		Defaults: func(item *models.TeamMember) { item.IsActive = true },
		Filters: map[string]string{
			"is_leadership": "is_leadership",
			"is_active":     "is_active",
		},
		Sortable: map[string]string{
			"order":      "\"order\"",
			"name":       "name",
			"experience": "experience",
		},
		DefaultSort: "\"order\" ASC, id ASC",
		Prepare: func(m *models.TeamMember) {
			m.Name = strings.TrimSpace(m.Name)
			m.Email = strings.ToLower(strings.TrimSpace(m.Email))
		},
		Validate: func(m *models.TeamMember) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "name", m.Name)
			utils.RequireString(&errs, "position", m.Position)
			if m.Email != "" && !utils.IsValidEmail(m.Email) {
				errs.Add("email", "must be a valid email address")
			}
			if m.Phone != "" && !utils.IsValidPhone(m.Phone) {
				errs.Add("phone", "must be a valid phone number")
			}
			if m.Experience < 0 {
				errs.Add("experience", "cannot be negative")
			}
			if len(m.Bio) > 1000 {
				errs.Add("bio", "cannot exceed 1000 characters")
			}
			validateSocialLinks(&errs, "social_media", m.SocialMedia)
			return errs
		},
	}
}

// BlogResource describes the blog post resource. An empty slug is derived from the title.
func BlogResource() Resource[models.BlogPost] {
	return Resource[models.BlogPost]{
		Name: "blog post",
		Filters: map[string]string{
			"category":     "category",
			"is_published": "is_published",
			"author_id":    "author_id",
		},
		Sortable: map[string]string{
			"publish_date": "publish_date",
			"created_at":   "created_at",
			"views":        "views",
			"likes":        "likes",
			"title":        "title",
		},
		DefaultSort: "created_at DESC",
		Prepare: func(p *models.BlogPost) {
			p.Title = strings.TrimSpace(p.Title)
			if strings.TrimSpace(p.Slug) == "" {
				p.Slug = slug.Make(p.Title)
			} else {
				p.Slug = slug.Make(p.Slug)
			}
			if p.ReadTime <= 0 {
				p.ReadTime = 5
			}
		},
		Validate: func(p *models.BlogPost) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "title", p.Title)
			utils.RequireString(&errs, "excerpt", p.Excerpt)
			utils.RequireString(&errs, "content", p.Content)
			utils.RequireString(&errs, "category", p.Category)
			utils.RequireOneOf(&errs, "category", p.Category, blogCategories...)
			if p.Slug == "" && p.Title != "" {
				errs.Add("slug", "could not be derived from title")
			}
			if len(p.Title) > 200 {
				errs.Add("title", "cannot exceed 200 characters")
			}
			if len(p.Excerpt) > 300 {
				errs.Add("excerpt", "cannot exceed 300 characters")
			}
			if p.Views < 0 || p.Likes < 0 {
				errs.Add("views", "counters cannot be negative")
			}
			return errs
		},
	}
}

// TestimonialResource describes the client testimonial resource
func TestimonialResource() Resource[models.Testimonial] {
	return Resource[models.Testimonial]{
		Name:     "testimonial",
		Defaults: func(item *models.Testimonial) { item.IsActive = true },
		Filters: map[string]string{
			"is_featured": "is_featured",
			"is_active":   "is_active",
		},
		Sortable: map[string]string{
			"rating":     "rating",
			"created_at": "created_at",
		},
		DefaultSort: "created_at DESC",
		Prepare: func(t *models.Testimonial) {
			t.ClientName = strings.TrimSpace(t.ClientName)
			if t.Rating == 0 {
				t.Rating = 5
			}
		},
		Validate: func(t *models.Testimonial) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "client_name", t.ClientName)
			utils.RequireString(&errs, "company_name", t.CompanyName)
			utils.RequireString(&errs, "testimonial", t.Testimonial)
			if t.Rating < 1 || t.Rating > 5 {
				errs.Add("rating", "must be between 1 and 5")
			}
			utils.RequireOneOf(&errs, "project_type", t.ProjectType, serviceCategories...)
			if len(t.Testimonial) > 1000 {
				errs.Add("testimonial", "cannot exceed 1000 characters")
			}
			return errs
		},
	}
}

// CareerResource describes the open position resource
func CareerResource() Resource[models.Career] {
	return Resource[models.Career]{
		Name:     "career",
		Defaults: func(item *models.Career) { item.IsActive = true },
		Filters: map[string]string{
			"department": "department",
			"type":       "type",
			"is_active":  "is_active",
		},
		Sortable: map[string]string{
			"created_at":           "created_at",
			"application_deadline": "application_deadline",
			"title":                "title",
		},
		DefaultSort: "created_at DESC",
		Prepare: func(c *models.Career) {
			c.Title = strings.TrimSpace(c.Title)
			c.SalaryCurrency = strings.ToUpper(strings.TrimSpace(c.SalaryCurrency))
			if c.SalaryCurrency == "" {
				c.SalaryCurrency = "USD"
			}
		},
		Validate: func(c *models.Career) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "title", c.Title)
			utils.RequireString(&errs, "department", c.Department)
			utils.RequireString(&errs, "location", c.Location)
			utils.RequireString(&errs, "type", c.Type)
			utils.RequireString(&errs, "experience", c.Experience)
			utils.RequireString(&errs, "description", c.Description)
			utils.RequireOneOf(&errs, "department", c.Department, departments...)
			utils.RequireOneOf(&errs, "type", c.Type, jobTypes...)
			utils.RequireOneOf(&errs, "experience", c.Experience, experienceLevels...)
			if c.SalaryMin < 0 || c.SalaryMax < 0 {
				errs.Add("salary", "cannot be negative")
			} else if c.SalaryMax > 0 && c.SalaryMin > c.SalaryMax {
				errs.Add("salary", "minimum cannot exceed maximum")
			}
			if !isCurrencyCode(c.SalaryCurrency) {
				errs.Add("salary_currency", "must be a three letter ISO 4217 code")
			}
			return errs
		},
	}
}

// ContactResource describes contact form submissions
func ContactResource() Resource[models.Contact] {
	return Resource[models.Contact]{
		Name: "contact",
		Filters: map[string]string{
			"status":       "status",
			"inquiry_type": "inquiry_type",
			"is_read":      "is_read",
		},
		Sortable: map[string]string{
			"created_at": "created_at",
			"status":     "status",
		},
		DefaultSort: "created_at DESC",
		Prepare: func(c *models.Contact) {
			c.Name = strings.TrimSpace(c.Name)
			c.Email = strings.ToLower(strings.TrimSpace(c.Email))
			if c.Status == "" {
				c.Status = "new"
			}
			if c.InquiryType == "" {
				c.InquiryType = "general"
			}
			if c.Budget == "" {
				c.Budget = "not-specified"
			}
			if c.Timeline == "" {
				c.Timeline = "not-specified"
			}
		},
		Validate: func(c *models.Contact) utils.FieldValidationErrors {
			var errs utils.FieldValidationErrors
			utils.RequireString(&errs, "name", c.Name)
			utils.RequireString(&errs, "email", c.Email)
			utils.RequireString(&errs, "subject", c.Subject)
			utils.RequireString(&errs, "message", c.Message)
			if c.Email != "" && !utils.IsValidEmail(c.Email) {
				errs.Add("email", "must be a valid email address")
			}
			if c.Phone != "" && !utils.IsValidPhone(c.Phone) {
				errs.Add("phone", "must be a valid phone number")
			}
			if len(c.Message) > 2000 {
				errs.Add("message", "cannot exceed 2000 characters")
			}
			utils.RequireOneOf(&errs, "inquiry_type", c.InquiryType, inquiryTypes...)
			utils.RequireOneOf(&errs, "service_interest", c.ServiceInterest, serviceCategories...)
			utils.RequireOneOf(&errs, "budget", c.Budget, budgets...)
			utils.RequireOneOf(&errs, "timeline", c.Timeline, timelines...)
			utils.RequireOneOf(&errs, "status", c.Status, contactStatuses...)
			return errs
		},
	}
}

func validateSocialLinks(errs *utils.FieldValidationErrors, prefix string, links models.SocialLinks) {
	for name, link := range map[string]string{
		"facebook":  links.Facebook,
		"twitter":   links.Twitter,
		"linkedin":  links.LinkedIn,
		"instagram": links.Instagram,
		"github":    links.GitHub,
	} {
		if link != "" && !utils.IsValidURL(link) {
			errs.Add(prefix+"."+name, "must be a valid URL")
		}
	}
}

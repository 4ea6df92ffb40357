package models

import (
	"time"

	"gorm.io/datatypes"
)

// Entity is implemented by every content model through Base
type Entity interface {
	GetID() uint
	SetID(id uint)
}

// Base holds the identity and timestamps shared by content models
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) GetID() uint   { return b.ID }
func (b *Base) SetID(id uint) { b.ID = id }

// Company is the marketing site's profile
type Company struct {
	Base
	Name        string                          `json:"name" gorm:"not null"`
	Tagline     string                          `json:"tagline"`
	Mission     string                          `json:"mission"`
	Vision      string                          `json:"vision"`
	Story       string                          `json:"story"`
	Values      datatypes.JSONSlice[TitledText] `json:"values"`
	HeroImage   string                          `json:"hero_image"`
	HeroVideo   string                          `json:"hero_video"`
	Address     PostalAddress                   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Contact     CompanyContact                  `json:"contact" gorm:"embedded;embeddedPrefix:contact_"`
	SocialMedia SocialLinks                     `json:"social_media" gorm:"embedded;embeddedPrefix:social_"`
}

// TitledText is a short titled paragraph (company values, achievements)
type TitledText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PostalAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type CompanyContact struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BusinessHours string `json:"business_hours"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Service is an offering shown on the services page
type Service struct {
	Base
	Title            string                      `json:"title" gorm:"not null"`
	Description      string                      `json:"description"`
	ShortDescription string                      `json:"short_description"`
	Category         string                      `json:"category" gorm:"size:32;index"`
	Features         datatypes.JSONSlice[string] `json:"features"`
	PricingType      string                      `json:"pricing_type" gorm:"size:16;default:contact"`
	PricingAmount    float64                     `json:"pricing_amount"`
	PricingCurrency  string                      `json:"pricing_currency" gorm:"size:3;default:USD"`
	Images           datatypes.JSONSlice[string] `json:"images"`
	IsActive         bool                        `json:"is_active"`
	Order            int                         `json:"order" gorm:"default:0"`
}

// TeamMember is a person listed on the team page
type TeamMember struct {
	Base
	Name         string                      `json:"name" gorm:"not null"`
	Position     string                      `json:"position"`
	Bio          string                      `json:"bio"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone"`
	Image        string                      `json:"image"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Experience   int                         `json:"experience"`
	SocialMedia  SocialLinks                 `json:"social_media" gorm:"embedded;embeddedPrefix:social_"`
	IsLeadership bool                        `json:"is_leadership" gorm:"default:false"`
	IsActive     bool                        `json:"is_active"`
	Order        int                         `json:"order" gorm:"default:0"`
}

// BlogPost is an article; Slug is derived from Title when left empty
type BlogPost struct {
	Base
	Title         string                      `json:"title" gorm:"not null"`
	Slug          string                      `json:"slug" gorm:"size:191;uniqueIndex"`
	Excerpt       string                      `json:"excerpt"`
	Content       string                      `json:"content"`
	AuthorID      uint                        `json:"author_id" gorm:"index"`
	Category      string                      `json:"category" gorm:"size:32;index"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	FeaturedImage string                      `json:"featured_image"`
	IsPublished   bool                        `json:"is_published" gorm:"default:false;index"`
	PublishDate   *time.Time                  `json:"publish_date,omitempty"`
	ReadTime      int                         `json:"read_time" gorm:"default:5"`
	Views         int                         `json:"views" gorm:"default:0"`
	Likes         int                         `json:"likes" gorm:"default:0"`
}

// Testimonial is a client quote
type Testimonial struct {
	Base
	ClientName     string `json:"client_name" gorm:"not null"`
	ClientPosition string `json:"client_position"`
	CompanyName    string `json:"company_name"`
	Testimonial    string `json:"testimonial"`
	Rating         int    `json:"rating" gorm:"default:5"`
	ClientImage    string `json:"client_image"`
	ProjectType    string `json:"project_type"`
	IsFeatured     bool   `json:"is_featured" gorm:"default:false"`
	IsActive       bool   `json:"is_active"`
}

// Career is an open position
type Career struct {
	Base
	Title               string                      `json:"title" gorm:"not null"`
	Department          string                      `json:"department" gorm:"size:32;index"`
	Location            string                      `json:"location"`
	Type                string                      `json:"type" gorm:"size:16;index"`
	Experience          string                      `json:"experience" gorm:"size:16"`
	Description         string                      `json:"description"`
	Responsibilities    datatypes.JSONSlice[string] `json:"responsibilities"`
	Requirements        datatypes.JSONSlice[string] `json:"requirements"`
	Skills              datatypes.JSONSlice[string] `json:"skills"`
	SalaryMin           float64                     `json:"salary_min"`
	SalaryMax           float64                     `json:"salary_max"`
	SalaryCurrency      string                      `json:"salary_currency" gorm:"size:3;default:USD"`
	IsActive            bool                        `json:"is_active" gorm:"index"`
	ApplicationDeadline *time.Time                  `json:"application_deadline,omitempty"`
}

// Contact is a message submitted through the contact form
type Contact struct {
	Base
	Name            string     `json:"name" gorm:"not null"`
	Email           string     `json:"email" gorm:"not null;index"`
	Phone           string     `json:"phone"`
	Company         string     `json:"company"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	InquiryType     string     `json:"inquiry_type" gorm:"size:32;default:general"`
	ServiceInterest string     `json:"service_interest" gorm:"size:32"`
	Budget          string     `json:"budget" gorm:"size:16;default:not-specified"`
	Timeline        string     `json:"timeline" gorm:"size:16;default:not-specified"`
	Status          string     `json:"status" gorm:"size:16;default:new;index"`
	IsRead          bool       `json:"is_read" gorm:"default:false"`
	Notes           string     `json:"notes"`
	ResponseDate    *time.Time `json:"response_date,omitempty"`
}

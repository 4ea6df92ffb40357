package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"

	"gorm.io/gorm"
)

// SeedReport counts the records SeedContent inserted
type SeedReport struct {
	Companies    int
	Services     int
	TeamMembers  int
	Testimonials int
	Careers      int
	BlogPosts    int
}

// SeedContent replaces the site content with sample data.
// Payment tables are never touched.
func SeedContent(ctx context.Context, db *gorm.DB) (*SeedReport, error) {
	report := &SeedReport{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.BlogPost{}, &models.Company{}, &models.Service{},
			&models.TeamMember{}, &models.Testimonial{}, &models.Career{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		company := NewContentService[models.Company, *models.Company](tx, CompanyResource())
		if err := company.Create(ctx, sampleCompany()); err != nil {
			return err
		}
		report.Companies = 1

		team := NewContentService[models.TeamMember, *models.TeamMember](tx, TeamResource())
		members := sampleTeam()
		for i := range members {
			if err := team.Create(ctx, &members[i]); err != nil {
				return err
			}
		}
		report.TeamMembers = len(members)

		offerings := NewContentService[models.Service, *models.Service](tx, ServiceResource())
		for _, s := range sampleServices() {
			if err := offerings.Create(ctx, &s); err != nil {
				return err
			}
			report.Services++
		}

		testimonials := NewContentService[models.Testimonial, *models.Testimonial](tx, TestimonialResource())
		for _, t := range sampleTestimonials() {
			if err := testimonials.Create(ctx, &t); err != nil {
				return err
			}
			report.Testimonials++
		}

		careers := NewContentService[models.Career, *models.Career](tx, CareerResource())
		for _, c := range sampleCareers() {
			if err := careers.Create(ctx, &c); err != nil {
				return err
			}
			report.Careers++
		}

		// the sample post is written by the CTO
		blog := NewContentService[models.BlogPost, *models.BlogPost](tx, BlogResource())
		now := time.Now()
		post := &models.BlogPost{
			Title:       "The Future of Web Development",
			Slug:        "future-of-web-development",
			Excerpt:     "Exploring the latest trends and technologies shaping the future of web development.",
			Content:     "<p>Web development is constantly evolving, with new technologies and frameworks emerging regularly. In this post, we explore the key trends that will shape the future of web development.</p><h2>Key Trends</h2><ul><li>Progressive Web Apps</li><li>Serverless Architecture</li><li>AI Integration</li><li>WebAssembly</li></ul>",
			AuthorID:    members[1].ID,
			Category:    "technology",
			Tags:        []string{"web development", "technology", "trends"},
			IsPublished: true,
			PublishDate: &now,
			ReadTime:    5,
		}
		if err := blog.Create(ctx, post); err != nil {
			return err
		}
		report.BlogPosts = 1
		return nil
	})
	if err != nil {
		utils.LogError("Seeding content failed: %v", err)
		return nil, err
	}

	utils.LogInfo("Seeded content - Services: %d, Team: %d, Testimonials: %d, Careers: %d, Posts: %d",
		report.Services, report.TeamMembers, report.Testimonials, report.Careers, report.BlogPosts)
	return report, nil
}

func sampleCompany() *models.Company {
	return &models.Company{
		Name:    "TechSolutions Inc.",
		Tagline: "Innovative Solutions for Modern Businesses",
		Mission: "To empower businesses with cutting-edge technology solutions that drive growth and success.",
		Vision:  "To be the leading provider of innovative technology solutions that transform how businesses operate.",
		Story:   "Founded in 2019, TechSolutions Inc. started as a small team of passionate developers with a vision to help businesses leverage technology for growth. Today, we serve clients worldwide with our comprehensive suite of services.",
		Values: []models.TitledText{
			{Title: "Innovation", Description: "We constantly push the boundaries of what's possible with technology."},
			{Title: "Quality", Description: "We deliver exceptional quality in everything we do."},
			{Title: "Integrity", Description: "We conduct business with honesty and transparency."},
			{Title: "Collaboration", Description: "We work closely with our clients to achieve their goals."},
		},
		Address: models.PostalAddress{
			Street:  "123 Tech Street",
			City:    "San Francisco",
			State:   "CA",
			ZipCode: "94105",
			Country: "USA",
		},
		Contact: models.CompanyContact{
			Phone:         "+1 (555) 123-4567",
			Email:         "info@techsolutions.com",
			BusinessHours: "Monday - Friday: 9:00 AM - 6:00 PM PST",
		},
		SocialMedia: models.SocialLinks{
			Facebook:  "https://facebook.com/techsolutions",
			Twitter:   "https://twitter.com/techsolutions",
			LinkedIn:  "https://linkedin.com/company/techsolutions",
			Instagram: "https://instagram.com/techsolutions",
		},
	}
}

func sampleTeam() []models.TeamMember {
	return []models.TeamMember{
		{
			Name:         "John Smith",
			Position:     "CEO & Founder",
			Bio:          "John is a visionary leader with over 15 years of experience in technology and business development.",
			Email:        "john@techsolutions.com",
			Skills:       []string{"Leadership", "Strategy", "Business Development"},
			Experience:   15,
			IsLeadership: true,
			IsActive:     true,
			Order:        1,
		},
		{
			Name:         "Sarah Johnson",
			Position:     "CTO",
			Bio:          "Sarah leads our technical team with expertise in full-stack development and system architecture.",
			Email:        "sarah@techsolutions.com",
			Skills:       []string{"Full-Stack Development", "System Architecture", "Team Leadership"},
			Experience:   12,
			IsLeadership: true,
			IsActive:     true,
			Order:        2,
		},
		{
			Name:       "Mike Chen",
			Position:   "Lead Developer",
			Bio:        "Mike is a passionate developer specializing in modern web technologies and mobile applications.",
			Email:      "mike@techsolutions.com",
			Skills:     []string{"React", "Node.js", "Mobile Development"},
			Experience: 8,
			IsActive:   true,
			Order:      3,
		},
	}
}

func sampleServices() []models.Service {
	return []models.Service{
		{
			Title:            "Web Development",
			Description:      "Custom web applications built with modern technologies to meet your business needs.",
			ShortDescription: "Modern, responsive websites and web applications.",
			Category:         "web-development",
			Features:         []string{"Responsive Design", "Modern Frameworks", "SEO Optimization", "Performance Optimization"},
			PricingType:      "custom",
			IsActive:         true,
			Order:            1,
		},
		{
			Title:            "Mobile App Development",
			Description:      "Native and cross-platform mobile applications for iOS and Android.",
			ShortDescription: "iOS and Android mobile applications.",
			Category:         "mobile-development",
			Features:         []string{"Native Development", "Cross-Platform", "App Store Deployment", "Push Notifications"},
			PricingType:      "custom",
			IsActive:         true,
			Order:            2,
		},
		{
			Title:            "UI/UX Design",
			Description:      "User-centered design solutions that create engaging and intuitive experiences.",
			ShortDescription: "Beautiful and intuitive user interfaces.",
			Category:         "design",
			Features:         []string{"User Research", "Wireframing", "Prototyping", "Visual Design"},
			PricingType:      "hourly",
			PricingAmount:    75,
			IsActive:         true,
			Order:            3,
		},
		{
			Title:            "Digital Marketing",
			Description:      "Comprehensive digital marketing strategies to grow your online presence.",
			ShortDescription: "SEO, social media, and digital advertising.",
			Category:         "marketing",
			Features:         []string{"SEO", "Social Media Marketing", "PPC Advertising", "Content Marketing"},
			PricingType:      "monthly",
			PricingAmount:    2500,
			IsActive:         true,
			Order:            4,
		},
	}
}

func sampleTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ClientName:     "Emily Davis",
			ClientPosition: "Marketing Director",
			CompanyName:    "GrowthCorp",
			Testimonial:    "TechSolutions delivered an exceptional website that exceeded our expectations. Their team was professional, responsive, and delivered on time.",
			Rating:         5,
			ProjectType:    "web-development",
			IsFeatured:     true,
			IsActive:       true,
		},
		{
			ClientName:     "Robert Wilson",
			ClientPosition: "CEO",
			CompanyName:    "StartupXYZ",
			Testimonial:    "The mobile app they developed for us has been a game-changer for our business. Highly recommend their services!",
			Rating:         5,
			ProjectType:    "mobile-development",
			IsFeatured:     true,
			IsActive:       true,
		},
		{
			ClientName:     "Lisa Brown",
			ClientPosition: "Product Manager",
			CompanyName:    "InnovateTech",
			Testimonial:    "Outstanding design work! They really understood our brand and created a beautiful, user-friendly interface.",
			Rating:         5,
			ProjectType:    "design",
			IsFeatured:     true,
			IsActive:       true,
		},
	}
}

func sampleCareers() []models.Career {
	return []models.Career{
		{
			Title:       "Senior Full-Stack Developer",
			Department:  "engineering",
			Location:    "San Francisco, CA (Remote)",
			Type:        "full-time",
			Experience:  "5-10-years",
			Description: "We are looking for a senior full-stack developer to join our growing team.",
			Responsibilities: []string{
				"Develop and maintain web applications",
				"Collaborate with design and product teams",
				"Mentor junior developers",
				"Participate in code reviews",
			},
			Requirements: []string{
				"5+ years of full-stack development experience",
				"Proficiency in React and Node.js",
				"Experience with databases (MongoDB, PostgreSQL)",
				"Strong problem-solving skills",
			},
			Skills:         []string{"React", "Node.js", "MongoDB", "JavaScript", "TypeScript"},
			SalaryMin:      120000,
			SalaryMax:      160000,
			SalaryCurrency: "USD",
			IsActive:       true,
		},
	}
}

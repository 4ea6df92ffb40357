package routes

import (
	"github.com/Govind-619/CorpSite/controllers"
	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type contentServices struct {
	company     *services.ContentService[models.Company, *models.Company]
	service     *services.ContentService[models.Service, *models.Service]
	team        *services.ContentService[models.TeamMember, *models.TeamMember]
	blog        *services.ContentService[models.BlogPost, *models.BlogPost]
	testimonial *services.ContentService[models.Testimonial, *models.Testimonial]
	career      *services.ContentService[models.Career, *models.Career]
	contact     *services.ContentService[models.Contact, *models.Contact]
}

func newContentServices(db *gorm.DB) *contentServices {
	return &contentServices{
		company:     services.NewContentService[models.Company, *models.Company](db, services.CompanyResource()),
		service:     services.NewContentService[models.Service, *models.Service](db, services.ServiceResource()),
		team:        services.NewContentService[models.TeamMember, *models.TeamMember](db, services.TeamResource()),
		blog:        services.NewContentService[models.BlogPost, *models.BlogPost](db, services.BlogResource()),
		testimonial: services.NewContentService[models.Testimonial, *models.Testimonial](db, services.TestimonialResource()),
		career:      services.NewContentService[models.Career, *models.Career](db, services.CareerResource()),
		contact:     services.NewContentService[models.Contact, *models.Contact](db, services.ContactResource()),
	}
}

func initContentRoutes(api *gin.RouterGroup, contents *contentServices) {
	controllers.NewCompanyController(contents.company).Register(api.Group("/company"))

	offerings := controllers.NewContentController(contents.service)
	servicesGroup := api.Group("/services")
	offerings.Register(servicesGroup)
	servicesGroup.GET("/category/:category", offerings.ListWhere(map[string]string{"is_active": "true"}, "category"))

	team := controllers.NewContentController(contents.team)
	teamGroup := api.Group("/team")
	team.Register(teamGroup)
	teamGroup.GET("/leadership", team.ListWhere(map[string]string{"is_leadership": "true", "is_active": "true"}))

	blog := controllers.NewBlogController(contents.blog, contents.team)
	blogGroup := api.Group("/blog")
	blog.Register(blogGroup)
	blogGroup.GET("/category/:category", blog.ListWhere(map[string]string{"is_published": "true"}, "category"))

	testimonials := controllers.NewContentController(contents.testimonial)
	testimonialGroup := api.Group("/testimonials")
	testimonials.Register(testimonialGroup)
	testimonialGroup.GET("/featured", testimonials.ListWhere(map[string]string{"is_featured": "true", "is_active": "true"}))

	controllers.NewContentController(contents.career).Register(api.Group("/careers"))
	controllers.NewContactController(contents.contact).Register(api.Group("/contact"))
}

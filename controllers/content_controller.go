package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
)

// ContentController exposes list/get/create/update/delete for one content resource
type ContentController[T any, PT interface {
	*T
	models.Entity
}] struct {
	service *services.ContentService[T, PT]
}

func NewContentController[T any, PT interface {
	*T
	models.Entity
}](service *services.ContentService[T, PT]) *ContentController[T, PT] {
	return &ContentController[T, PT]{service: service}
}

// Register mounts the CRUD routes on group
func (cc *ContentController[T, PT]) Register(group *gin.RouterGroup) {
	group.GET("", cc.List)
	group.GET("/:id", cc.Get)
	group.POST("", cc.Create)
	group.PUT("/:id", cc.Update)
	group.DELETE("/:id", cc.Delete)
}

// GET /api/<resource>
func (cc *ContentController[T, PT]) List(c *gin.Context) {
	cc.list(c, queryFilters(c))
}

// ListWhere serves a list with fixed filters, e.g. only featured items. Path
// parameters named in params filter the column of the same name. Neither can
// be overridden from the query string.
func (cc *ContentController[T, PT]) ListWhere(fixed map[string]string, params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := queryFilters(c)
		for key, value := range fixed {
			filters[key] = value
		}
		for _, param := range params {
			filters[param] = c.Param(param)
		}
		cc.list(c, filters)
	}
}

func (cc *ContentController[T, PT]) list(c *gin.Context, filters map[string]string) {
	pagination := utils.NewPagination(c)

	items, total, err := cc.service.List(c.Request.Context(), services.ListQuery{
		Filters: filters,
		Sort:    c.Query("sort"),
		Offset:  pagination.Offset,
		Limit:   pagination.Limit,
	})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	pagination.SetTotal(total)
	utils.LogDebug("Listed %d of %d %s records", len(items), total, cc.service.Name())

	utils.SuccessWithPagination(c, items, pagination)
}

func queryFilters(c *gin.Context) map[string]string {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return filters
}

// GET /api/<resource>/:id
func (cc *ContentController[T, PT]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := cc.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.Success(c, "", gin.H{"item": item})
}

// POST /api/<resource>
func (cc *ContentController[T, PT]) Create(c *gin.Context) {
	item := cc.service.New()
	if err := c.ShouldBindJSON(item); err != nil {
		utils.LogError("Invalid %s payload: %v", cc.service.Name(), err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	if err := cc.service.Create(c.Request.Context(), item); err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.LogInfo("Created %s %d", cc.service.Name(), PT(item).GetID())
	utils.Created(c, "", gin.H{"item": item})
}

// PUT /api/<resource>/:id
// Fields missing from the body keep their stored values.
func (cc *ContentController[T, PT]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		utils.LogError("Invalid %s update payload for id %d", cc.service.Name(), id)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	item, err := cc.service.Update(c.Request.Context(), id, func(item *T) error {
		if err := json.Unmarshal(body, item); err != nil {
			return errors.Join(services.ErrInvalidInput, err)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.LogInfo("Updated %s %d", cc.service.Name(), id)
	utils.Success(c, "", gin.H{"item": item})
}

// DELETE /api/<resource>/:id
func (cc *ContentController[T, PT]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.LogInfo("Deleted %s %d", cc.service.Name(), id)
	utils.Success(c, "Deleted successfully", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.BadRequest(c, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// BlogController adds slug lookups on top of the blog CRUD routes
type BlogController struct {
	*ContentController[models.BlogPost, *models.BlogPost]
	team *services.ContentService[models.TeamMember, *models.TeamMember]
}

func NewBlogController(posts *services.ContentService[models.BlogPost, *models.BlogPost], team *services.ContentService[models.TeamMember, *models.TeamMember]) *BlogController {
	return &BlogController{
		ContentController: NewContentController(posts),
		team:              team,
	}
}

// Register mounts the CRUD routes plus GET /slug/:slug
func (bc *BlogController) Register(group *gin.RouterGroup) {
	bc.ContentController.Register(group)
	group.GET("/slug/:slug", bc.GetBySlug)
}

// GET /api/blog/slug/:slug
// Each read counts as a view.
func (bc *BlogController) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	post, err := bc.service.FindBy(ctx, "slug", slug)
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}

	if err := bc.service.Increment(ctx, post.ID, "views"); err != nil {
		utils.LogError("Failed to count view for blog post %d: %v", post.ID, err)
	} else {
		post.Views++
	}

	data := gin.H{"item": post}
	if post.AuthorID != 0 && bc.team != nil {
		if author, err := bc.team.Get(ctx, post.AuthorID); err == nil {
			data["author"] = gin.H{
				"id":       author.ID,
				"name":     author.Name,
				"position": author.Position,
				"image":    author.Image,
				"bio":      author.Bio,
			}
		} else {
			utils.LogDebug("Author %d of blog post %d not loaded: %v", post.AuthorID, post.ID, err)
		}
	}
	utils.Success(c, "", data)
}

// CompanyController adds the public contact card to the company routes
type CompanyController struct {
	*ContentController[models.Company, *models.Company]
}

func NewCompanyController(service *services.ContentService[models.Company, *models.Company]) *CompanyController {
	return &CompanyController{ContentController: NewContentController(service)}
}

// Register mounts the CRUD routes plus GET /contact
func (cc *CompanyController) Register(group *gin.RouterGroup) {
	cc.ContentController.Register(group)
	group.GET("/contact", cc.ContactInfo)
}

// GET /api/company/contact
func (cc *CompanyController) ContactInfo(c *gin.Context) {
	companies, _, err := cc.service.List(c.Request.Context(), services.ListQuery{Limit: 1})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	if len(companies) == 0 {
		utils.RespondError(c, utils.NotFoundError("Contact information not found", nil))
		return
	}

	company := companies[0]
	utils.Success(c, "", gin.H{
		"contact":      company.Contact,
		"address":      company.Address,
		"social_media": company.SocialMedia,
	})
}

// ContactController adds read tracking to the contact message routes
type ContactController struct {
	*ContentController[models.Contact, *models.Contact]
}

func NewContactController(service *services.ContentService[models.Contact, *models.Contact]) *ContactController {
	return &ContactController{ContentController: NewContentController(service)}
}

// Register mounts the CRUD routes plus PATCH /:id/read
func (cc *ContactController) Register(group *gin.RouterGroup) {
	cc.ContentController.Register(group)
	group.PATCH("/:id/read", cc.MarkRead)
}

// PATCH /api/contact/:id/read
func (cc *ContactController) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := cc.service.Update(c.Request.Context(), id, func(contact *models.Contact) error {
		contact.IsRead = true
		return nil
	})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.LogInfo("Contact message %d marked read", id)
	utils.Success(c, "", gin.H{"item": contact})
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBlogService(t *testing.T) (*ContentService[models.BlogPost, *models.BlogPost], *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewContentService[models.BlogPost, *models.BlogPost](db, BlogResource()), db
}

func validPost(title string) *models.BlogPost {
	return &models.BlogPost{
		Title:    title,
		Excerpt:  "Short summary",
		Content:  "<p>Body</p>",
		Category: "technology",
	}
}

func TestContentCreateDerivesSlug(t *testing.T) {
	svc, _ := newBlogService(t)

	post := validPost("Hello, Go World!")
	post.ID = 99
	require.NoError(t, svc.Create(context.Background(), post))

	assert.NotZero(t, post.ID)
	assert.NotEqual(t, uint(99), post.ID, "client ids are ignored")
	assert.Equal(t, "hello-go-world", post.Slug)
	assert.Equal(t, 5, post.ReadTime)
}

func TestContentCreateValidation(t *testing.T) {
	svc, db := newBlogService(t)

	err := svc.Create(context.Background(), &models.BlogPost{Category: "gossip"})
	require.ErrorIs(t, err, ErrInvalidInput)

	fields := FieldsOf(err)
	for _, f := range []string{"title", "excerpt", "content", "category"} {
		assert.True(t, fields.Has(f), "missing %s", f)
	}

	var n int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestContentGetUpdateDelete(t *testing.T) {
	svc, _ := newBlogService(t)
	ctx := context.Background()

	post := validPost("First")
	require.NoError(t, svc.Create(ctx, post))
	created := post.CreatedAt

	updated, err := svc.Update(ctx, post.ID, func(p *models.BlogPost) error {
		p.ID = 12345
		p.Title = "First, revised"
		p.IsPublished = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, "First, revised", updated.Title)
	assert.True(t, updated.IsPublished)
	assert.WithinDuration(t, created, updated.CreatedAt, time.Second)

	_, err = svc.Update(ctx, post.ID, func(p *models.BlogPost) error {
		p.Category = "nope"
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	applyErr := errors.New("bad body")
	_, err = svc.Update(ctx, post.ID, func(*models.BlogPost) error { return applyErr })
	assert.ErrorIs(t, err, applyErr)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "technology", got.Category)

	require.NoError(t, svc.Delete(ctx, post.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, post.ID), ErrNotFound)

	_, err = svc.Update(ctx, post.ID, func(*models.BlogPost) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentListFiltersSortsAndPages(t *testing.T) {
	svc, _ := newBlogService(t)
	ctx := context.Background()

	for i, title := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		post := validPost(title)
		post.Views = i * 10
		post.IsPublished = i%2 == 0
		if i == 3 {
			post.Category = "business"
		}
		require.NoError(t, svc.Create(ctx, post))
	}

	items, total, err := svc.List(ctx, ListQuery{Sort: "-views", Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Delta", items[0].Title)
	assert.Equal(t, "Charlie", items[1].Title)

	items, total, err = svc.List(ctx, ListQuery{Sort: "views", Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Charlie", items[0].Title)

	_, total, err = svc.List(ctx, ListQuery{Filters: map[string]string{"is_published": "true"}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	items, total, err = svc.List(ctx, ListQuery{Filters: map[string]string{"category": "business"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Delta", items[0].Title)

	// unknown filters and sort keys are ignored rather than passed to SQL
	_, total, err = svc.List(ctx, ListQuery{
		Filters: map[string]string{"title; DROP TABLE blog_posts": "x"},
		Sort:    "title; DROP TABLE blog_posts",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestContentFindByAndIncrement(t *testing.T) {
	svc, _ := newBlogService(t)
	ctx := context.Background()

	post := validPost("Counting Views")
	require.NoError(t, svc.Create(ctx, post))

	found, err := svc.FindBy(ctx, "slug", "counting-views")
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)

	require.NoError(t, svc.Increment(ctx, post.ID, "views"))
	require.NoError(t, svc.Increment(ctx, post.ID, "views"))
	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	_, err = svc.FindBy(ctx, "slug", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentNewAppliesDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewContentService[models.Service, *models.Service](db, ServiceResource())
	ctx := context.Background()

	active := svc.New()
	assert.True(t, active.IsActive)
	active.Title, active.Description, active.Category = "Web", "Sites", "web-development"
	require.NoError(t, svc.Create(ctx, active))

	inactive := svc.New()
	inactive.Title, inactive.Description, inactive.Category = "Old", "Retired", "other"
	inactive.IsActive = false
	require.NoError(t, svc.Create(ctx, inactive))

	got, err := svc.Get(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive, "an explicit false is stored")

	_, total, err := svc.List(ctx, ListQuery{Filters: map[string]string{"is_active": "true"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestContactDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewContentService[models.Contact, *models.Contact](db, ContactResource())

	contact := &models.Contact{
		Name:    "Ravi",
		Email:   "  Ravi@Example.COM ",
		Subject: "Quote",
		Message: "Need a website",
	}
	require.NoError(t, svc.Create(context.Background(), contact))
	assert.Equal(t, "ravi@example.com", contact.Email)
	assert.Equal(t, "new", contact.Status)
	assert.Equal(t, "general", contact.InquiryType)

	err := svc.Create(context.Background(), &models.Contact{
		Name:     "Ravi",
		Email:    "ravi",
		Subject:  "Quote",
		Message:  "Hi",
		Budget:   "a lot",
		Timeline: "yesterday",
	})
	fields := FieldsOf(err)
	assert.True(t, fields.Has("email"))
	assert.True(t, fields.Has("budget"))
	assert.True(t, fields.Has("timeline"))
}

func TestResourceValidators(t *testing.T) {
	t.Run("testimonial rating", func(t *testing.T) {
		res := TestimonialResource()
		item := &models.Testimonial{ClientName: "A", CompanyName: "B", Testimonial: "C", Rating: 6}
		res.Prepare(item)
		assert.True(t, res.Validate(item).Has("rating"))

		item.Rating = 0
		res.Prepare(item)
		assert.Equal(t, 5, item.Rating)
		assert.Empty(t, res.Validate(item))
	})

	t.Run("career enums and salary", func(t *testing.T) {
		res := CareerResource()
		item := &models.Career{
			Title: "Dev", Department: "space", Location: "Remote", Type: "gig",
			Experience: "forever", Description: "Build", SalaryMin: 10, SalaryMax: 5,
		}
		res.Prepare(item)
		errs := res.Validate(item)
		for _, f := range []string{"department", "type", "experience", "salary"} {
			assert.True(t, errs.Has(f), "missing %s", f)
		}
		assert.Equal(t, "USD", item.SalaryCurrency)
	})

	t.Run("team member social links", func(t *testing.T) {
		res := TeamResource()
		item := &models.TeamMember{Name: "A", Position: "B", SocialMedia: models.SocialLinks{GitHub: "not a url"}}
		assert.True(t, res.Validate(item).Has("social_media.github"))
	})

	t.Run("service pricing", func(t *testing.T) {
		res := ServiceResource()
		item := &models.Service{Title: "Web", Description: "d", Category: "web-development", PricingAmount: -1}
		res.Prepare(item)
		errs := res.Validate(item)
		assert.True(t, errs.Has("pricing_amount"))
		assert.Equal(t, "contact", item.PricingType)
	})

	t.Run("company", func(t *testing.T) {
		res := CompanyResource()
		item := &models.Company{Contact: models.CompanyContact{Email: "x"}}
		errs := res.Validate(item)
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("contact.email"))
	})
}

func TestSeedContent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	store := NewOrderStore(db)
	seedOrder(t, store, "order_keep", models.PaymentStatusPaid)

	for i := 0; i < 2; i++ {
		report, err := SeedContent(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Services)
		assert.Equal(t, 3, report.TeamMembers)
	}

	var services, posts int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&posts).Error)
	assert.EqualValues(t, 4, services, "seeding twice replaces instead of appending")
	assert.EqualValues(t, 1, posts)

	var post models.BlogPost
	require.NoError(t, db.First(&post).Error)
	var author models.TeamMember
	require.NoError(t, db.First(&author, post.AuthorID).Error)
	assert.Equal(t, "Sarah Johnson", author.Name)

	_, err := store.FindByOrderID(ctx, "order_keep")
	assert.NoError(t, err, "payment data survives seeding")
}

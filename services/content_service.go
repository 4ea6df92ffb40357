package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"

	"gorm.io/gorm"
)

// Resource describes one content resource
type Resource[T any] struct {
	// Name is used in messages, e.g. "blog post"
	Name string
	// Filters maps query parameters to columns
	Filters map[string]string
	// Sortable maps sort keys to columns
	Sortable    map[string]string
	DefaultSort string
	// Defaults fills a new item before the request body is applied
	Defaults func(*T)
	// Prepare normalizes an item before validation
	Prepare  func(*T)
	Validate func(*T) utils.FieldValidationErrors
}

// ListQuery holds list parameters taken from the request
type ListQuery struct {
	Filters map[string]string
	Sort    string
	Offset  int
	Limit   int
}

// ContentService provides list/get/create/update/delete over one model
type ContentService[T any, PT interface {
	*T
	models.Entity
}] struct {
	db  *gorm.DB
	res Resource[T]
}

func NewContentService[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB, res Resource[T]) *ContentService[T, PT] {
	return &ContentService[T, PT]{db: db, res: res}
}

// Name returns the resource name
func (s *ContentService[T, PT]) Name() string { return s.res.Name }

// New returns an empty item with the resource defaults applied
func (s *ContentService[T, PT]) New() *T {
	item := new(T)
	if s.res.Defaults != nil {
		s.res.Defaults(item)
	}
	return item
}

// List returns one page of items and the total matching count
func (s *ContentService[T, PT]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	scoped := func() *gorm.DB {
		query := s.db.WithContext(ctx).Model(new(T))
		for param, column := range s.res.Filters {
			value, ok := q.Filters[param]
			if !ok || value == "" {
				continue
			}
			switch strings.ToLower(value) {
			case "true":
				query = query.Where(column+" = ?", true)
			case "false":
				query = query.Where(column+" = ?", false)
			default:
				query = query.Where(column+" = ?", value)
			}
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: count %s: %v", ErrPersistence, s.res.Name, err)
	}

	items := make([]T, 0)
	query := scoped().Order(s.orderClause(q.Sort)).Offset(q.Offset)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: list %s: %v", ErrPersistence, s.res.Name, err)
	}
	return items, total, nil
}

// orderClause turns "field" or "-field" into an ORDER BY clause over whitelisted columns
func (s *ContentService[T, PT]) orderClause(sort string) string {
	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")
	column, ok := s.res.Sortable[key]
	if !ok {
		if s.res.DefaultSort != "" {
			return s.res.DefaultSort
		}
		return "id DESC"
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// Get returns the item with id
func (s *ContentService[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, s.res.Name, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s %d: %v", ErrPersistence, s.res.Name, id, err)
	}
	return &item, nil
}

// FindBy returns the first item whose column equals value
func (s *ContentService[T, PT]) FindBy(ctx context.Context, column string, value interface{}) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Where(column+" = ?", value).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.res.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find %s: %v", ErrPersistence, s.res.Name, err)
	}
	return &item, nil
}

// Create validates and inserts item
func (s *ContentService[T, PT]) Create(ctx context.Context, item *T) error {
	PT(item).SetID(0)
	if err := s.check(item); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, s.res.Name)
		}
		return fmt.Errorf("%w: create %s: %v", ErrPersistence, s.res.Name, err)
	}
	return nil
}

// Update loads the item, lets apply modify it, validates and saves it.
// apply cannot change the id or the creation time.
func (s *ContentService[T, PT]) Update(ctx context.Context, id uint, apply func(*T) error) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(item); err != nil {
		return nil, err
	}
	PT(item).SetID(id)
	if err := s.check(item); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit("created_at").Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, s.res.Name)
		}
		return nil, fmt.Errorf("%w: update %s %d: %v", ErrPersistence, s.res.Name, id, err)
	}
	return s.Get(ctx, id)
}

// Delete removes the item with id
func (s *ContentService[T, PT]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("%w: delete %s %d: %v", ErrPersistence, s.res.Name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, s.res.Name, id)
	}
	return nil
}

// Increment adds one to an integer column, e.g. blog post views
func (s *ContentService[T, PT]) Increment(ctx context.Context, id uint, column string) error {
	err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("%w: increment %s on %s %d: %v", ErrPersistence, column, s.res.Name, id, err)
	}
	return nil
}

func (s *ContentService[T, PT]) check(item *T) error {
	if s.res.Prepare != nil {
		s.res.Prepare(item)
	}
	if s.res.Validate == nil {
		return nil
	}
	return newInputError(s.res.Validate(item))
}

package services

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pratapadwait/pratapliving/dto"
	apperrors "github.com/pratapadwait/pratapliving/errors"
	"github.com/pratapadwait/pratapliving/models"
	"github.com/pratapadwait/pratapliving/services/logger"
	"github.com/pratapadwait/pratapliving/validator"
)

// PropertyService owns CRUD persistence for property records plus the
// read-through listing cache. Updates are last-write-wins: there is no
// optimistic locking, acceptable with a single admin operator and
// documented as a known limitation.
type PropertyService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type PropertyServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client // optional; nil disables caching
	Logger logger.Logger
}

func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyService{db: opts.DB, rdb: opts.Redis, logger: l}
}

// List returns all properties in unspecified order; the display layer
// sorts and filters.
func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, PropertiesCacheKey, &properties); err == nil && len(properties) > 0 {
			return properties, nil
		}
	}

	if err := s.db.WithContext(ctx).Find(&properties).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, PropertiesCacheKey, properties, ListingCacheTTL); err != nil {
			s.logger.Error("caching property list: %v", err)
		}
	}
	return properties, nil
}

// GetFeatured returns the homepage promotions.
func (s *PropertyService) GetFeatured(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, FeaturedCacheKey, &properties); err == nil && len(properties) > 0 {
			return properties, nil
		}
	}

	if err := s.db.WithContext(ctx).Where("featured = ?", true).Find(&properties).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, FeaturedCacheKey, properties, ListingCacheTTL); err != nil {
			s.logger.Error("caching featured properties: %v", err)
		}
	}
	return properties, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).First(&property, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Resolve looks a property up by id first, then by slug, so an id
// always wins when the two spaces overlap.
func (s *PropertyService) Resolve(ctx context.Context, key string) (*models.Property, error) {
	property, err := s.GetByID(ctx, key)
	if err == nil {
		return property, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.GetBySlug(ctx, key)
}

// Create validates, normalizes and persists a new property, returning
// the stored record including the generated id.
func (s *PropertyService) Create(ctx context.Context, req *dto.PropertyRequest) (*models.Property, error) {
	property, verrs := validator.NormalizeProperty(req)
	if verrs != nil {
		return nil, verrs
	}

	if property.Slug != nil {
		if _, err := s.GetBySlug(ctx, *property.Slug); err == nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateSlug,
				"a property with this slug already exists", nil)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	s.invalidateListingCache(ctx)
	return property, nil
}

// Update merges the supplied fields onto the stored record. Omitted
// fields keep their values; the merged result is re-validated as a
// whole before saving.
func (s *PropertyService) Update(ctx context.Context, id string, patch *dto.PropertyUpdateRequest) (*models.Property, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, verrs := validator.NormalizeProperty(validator.OverlayUpdate(existing, patch))
	if verrs != nil {
		return nil, verrs
	}

	if merged.Slug != nil && (existing.Slug == nil || *existing.Slug != *merged.Slug) {
		if _, err := s.GetBySlug(ctx, *merged.Slug); err == nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateSlug,
				"a property with this slug already exists", nil)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(merged).Error; err != nil {
		return nil, err
	}
	s.invalidateListingCache(ctx)
	return merged, nil
}

// Delete removes the record and reports whether anything was deleted,
// so the handler can answer 200 for "deleted" and 404 for "nothing to
// delete" without treating either as a failure.
func (s *PropertyService) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	s.invalidateListingCache(ctx)
	return true, nil
}

// RefreshListingCache rewarms the listing cache from the database. The
// hourly cron job calls this; mutations just invalidate.
func (s *PropertyService) RefreshListingCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	var properties []models.Property
	if err := s.db.WithContext(ctx).Find(&properties).Error; err != nil {
		return err
	}
	if err := SetToRedis(ctx, s.rdb, PropertiesCacheKey, properties, ListingCacheTTL); err != nil {
		return err
	}
	featured := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return SetToRedis(ctx, s.rdb, FeaturedCacheKey, featured, ListingCacheTTL)
}

func (s *PropertyService) invalidateListingCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, PropertiesCacheKey, FeaturedCacheKey); err != nil {
		s.logger.Error("invalidating listing cache: %v", err)
	}
}

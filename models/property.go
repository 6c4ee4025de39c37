package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Property is a bookable listing shown on the public site. The type,
// amenity and image lists are native Postgres text[] columns.
type Property struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug        *string        `json:"slug,omitempty" gorm:"uniqueIndex"`
	Name        string         `json:"name"`
	Type        pq.StringArray `json:"type" gorm:"type:text[]"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Price       int            `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Guests      int            `json:"guests"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	ImageURL    string         `json:"imageUrl" gorm:"column:image_url"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the server-generated ID. Clients never supply it.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Gallery returns the effective display order: the cover image first,
// then the secondary images.
func (p *Property) Gallery() []string {
	gallery := make([]string, 0, len(p.Images)+1)
	gallery = append(gallery, p.ImageURL)
	gallery = append(gallery, p.Images...)
	return gallery
}

// HasType reports whether the property carries the given category tag.
func (p *Property) HasType(tag string) bool {
	for _, t := range p.Type {
		if t == tag {
			return true
		}
	}
	return false
}

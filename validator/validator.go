package validator

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"github.com/pratapadwait/pratapliving/constants"
	"github.com/pratapadwait/pratapliving/dto"
	"github.com/pratapadwait/pratapliving/models"
)

// FieldError is one failing field with a user-fixable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors enumerates every failing field of a payload. A
// payload either normalizes fully or fails with the complete list,
// never a partial result.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

var (
	validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

func init() {
	// Struct rules live in `binding` tags so gin and this package read
	// the same ones.
	validate.SetTagName("binding")
	// Report JSON field names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// NormalizeProperty turns an admin payload into a storable Property, or
// the full list of validation failures. Pure: no storage side effects.
//
// Numeric fields are deliberately lenient: missing or unparseable input
// falls back to 1 for room/guest counts and 0 for price instead of
// failing, matching the old admin form's behavior.
func NormalizeProperty(req *dto.PropertyRequest) (*models.Property, ValidationErrors) {
	var errs ValidationErrors

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{"name", "is required"})
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		errs = append(errs, FieldError{"location", "is required"})
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		errs = append(errs, FieldError{"description", "is required"})
	}

	tags, unknown := NormalizeTypeTags(req.Type)
	if len(unknown) > 0 {
		errs = append(errs, FieldError{"type", fmt.Sprintf(
			"has unknown tags %s; allowed: %s",
			strings.Join(unknown, ", "), strings.Join(constants.PropertyTypes, ", "))})
	} else if len(tags) == 0 {
		errs = append(errs, FieldError{"type", "needs at least one category tag"})
	}

	amenities := normalizeList(req.Amenities)
	if len(amenities) == 0 {
		errs = append(errs, FieldError{"amenities", "needs at least one entry"})
	}

	price := req.Price.Or(0)
	if price < 0 {
		errs = append(errs, FieldError{"price", "must be zero or greater"})
	}
	bedrooms := req.Bedrooms.Or(1)
	if bedrooms < 1 {
		errs = append(errs, FieldError{"bedrooms", "must be at least 1"})
	}
	bathrooms := req.Bathrooms.Or(1)
	if bathrooms < 1 {
		errs = append(errs, FieldError{"bathrooms", "must be at least 1"})
	}
	guests := req.Guests.Or(1)
	if guests < 1 {
		errs = append(errs, FieldError{"guests", "must be at least 1"})
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if !IsImageRef(imageURL) {
		errs = append(errs, FieldError{"imageUrl", "must be an absolute URL or an internal object path"})
	}

	images := normalizeGallery(imageURL, normalizeList(req.Images))
	for _, img := range images {
		if !IsImageRef(img) {
			errs = append(errs, FieldError{"images", fmt.Sprintf("contains an invalid reference: %q", img)})
			break
		}
	}
	if 1+len(images) > constants.MaxGalleryImages {
		errs = append(errs, FieldError{"images", fmt.Sprintf(
			"gallery is capped at %d images", constants.MaxGalleryImages)})
	}

	var slug *string
	if req.Slug != nil {
		if s := strings.TrimSpace(*req.Slug); s != "" {
			slug = &s
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Property{
		Slug:        slug,
		Name:        name,
		Type:        pq.StringArray(tags),
		Location:    location,
		Description: description,
		Price:       price,
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Guests:      guests,
		Amenities:   pq.StringArray(amenities),
		ImageURL:    imageURL,
		Images:      pq.StringArray(images),
		Featured:    req.Featured,
	}, nil
}

// OverlayUpdate merges a partial update onto the stored record and
// returns the full payload for re-normalization. Omitted fields keep
// their stored values; they are never nulled out.
func OverlayUpdate(existing *models.Property, patch *dto.PropertyUpdateRequest) *dto.PropertyRequest {
	req := &dto.PropertyRequest{
		Slug:        existing.Slug,
		Name:        existing.Name,
		Type:        dto.StringList(existing.Type),
		Location:    existing.Location,
		Description: existing.Description,
		Price:       dto.IntValue(existing.Price),
		Bedrooms:    dto.IntValue(existing.Bedrooms),
		Bathrooms:   dto.IntValue(existing.Bathrooms),
		Guests:      dto.IntValue(existing.Guests),
		Amenities:   dto.StringList(existing.Amenities),
		ImageURL:    existing.ImageURL,
		Images:      dto.StringList(existing.Images),
		Featured:    existing.Featured,
	}
	if patch.Slug != nil {
		req.Slug = patch.Slug
	}
	if patch.Name != nil {
		req.Name = *patch.Name
	}
	if patch.Type != nil {
		req.Type = *patch.Type
	}
	if patch.Location != nil {
		req.Location = *patch.Location
	}
	if patch.Description != nil {
		req.Description = *patch.Description
	}
	if patch.Price != nil {
		req.Price = *patch.Price
	}
	if patch.Bedrooms != nil {
		req.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		req.Bathrooms = *patch.Bathrooms
	}
	if patch.Guests != nil {
		req.Guests = *patch.Guests
	}
	if patch.Amenities != nil {
		req.Amenities = *patch.Amenities
	}
	if patch.ImageURL != nil {
		req.ImageURL = *patch.ImageURL
	}
	if patch.Images != nil {
		req.Images = *patch.Images
	}
	if patch.Featured != nil {
		req.Featured = *patch.Featured
	}
	return req
}

// NormalizeTypeTags parses category tags from an array or comma-joined
// input: split on comma, trim, lowercase, drop empties, dedupe. Returns
// the clean tag set and any tags outside the known categories.
func NormalizeTypeTags(raw []string) (tags []string, unknown []string) {
	seen := make(map[string]bool)
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			tag := strings.ToLower(strings.TrimSpace(part))
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			if isKnownType(tag) {
				tags = append(tags, tag)
			} else {
				unknown = append(unknown, tag)
			}
		}
	}
	return tags, unknown
}

func isKnownType(tag string) bool {
	for _, t := range constants.PropertyTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// normalizeList trims entries and drops blanks.
func normalizeList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s := strings.TrimSpace(entry); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// normalizeGallery drops duplicates from the secondary images, including
// any repeat of the cover image. The cover stays at position 0 of the
// effective gallery by construction.
func normalizeGallery(imageURL string, images []string) []string {
	seen := map[string]bool{imageURL: true}
	out := make([]string, 0, len(images))
	for _, img := range images {
		if seen[img] {
			continue
		}
		seen[img] = true
		out = append(out, img)
	}
	return out
}

// IsImageRef accepts absolute http(s) URLs and internal object paths.
func IsImageRef(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidatePartnerInquiry checks the partner form, collecting every
// failing field.
func ValidatePartnerInquiry(req *dto.PartnerInquiryRequest) ValidationErrors {
	errs := collectStructErrors(validate.Struct(req))
	if req.Phone != "" && !phoneRegex.MatchString(req.Phone) {
		errs = append(errs, FieldError{"phone", "must be a 10-digit number"})
	}
	return errs
}

// ValidateContactInquiry checks the contact form. Phone is optional but
// must be well-formed when present.
func ValidateContactInquiry(req *dto.ContactInquiryRequest) ValidationErrors {
	errs := collectStructErrors(validate.Struct(req))
	if req.Phone != "" && !phoneRegex.MatchString(req.Phone) {
		errs = append(errs, FieldError{"phone", "must be a 10-digit number"})
	}
	return errs
}

// FromBindingError converts a gin binding failure into the enumerated
// field-error shape, so bind-time and service-time validation read the
// same to clients.
func FromBindingError(err error) ValidationErrors {
	return collectStructErrors(err)
}

func collectStructErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var errs ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs = append(errs, FieldError{fe.Field(), tagMessage(fe.Tag())})
		}
		return errs
	}
	return ValidationErrors{{Field: "body", Message: "is not valid"}}
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "is not a valid email"
	default:
		return "is not valid"
	}
}

package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratapadwait/pratapliving/dto"
)

func validRequest() *dto.PropertyRequest {
	return &dto.PropertyRequest{
		Name:        "Lucknow Grand Villa",
		Type:        dto.StringList{"villa"},
		Location:    "Gomti Nagar, Lucknow",
		Description: "A spacious villa near the riverfront.",
		Price:       dto.IntValue(12000),
		Bedrooms:    dto.IntValue(4),
		Bathrooms:   dto.IntValue(3),
		Guests:      dto.IntValue(8),
		Amenities:   dto.StringList{"Wi-Fi", "Parking"},
		ImageURL:    "/images/villa.jpg",
		Images:      dto.StringList{"/images/villa-2.jpg"},
	}
}

func TestNormalizePropertyHappyPath(t *testing.T) {
	p, errs := NormalizeProperty(validRequest())
	require.Nil(t, errs)
	require.NotNil(t, p)

	assert.Equal(t, "Lucknow Grand Villa", p.Name)
	assert.Equal(t, []string{"villa"}, []string(p.Type))
	assert.Equal(t, 12000, p.Price)
	assert.Equal(t, "/images/villa.jpg", p.ImageURL)
	assert.Equal(t, []string{"/images/villa-2.jpg"}, []string(p.Images))
}

func TestNormalizePropertyCollectsEveryFailure(t *testing.T) {
	req := &dto.PropertyRequest{
		Name:     "   ",
		Type:     dto.StringList{"castle"},
		ImageURL: "not-a-url",
	}
	p, errs := NormalizeProperty(req)
	require.Nil(t, p)

	failing := make(map[string]bool)
	for _, fe := range errs {
		failing[fe.Field] = true
	}
	for _, field := range []string{"name", "location", "description", "type", "amenities", "imageUrl"} {
		assert.True(t, failing[field], "expected a failure for %s", field)
	}
}

func TestNormalizePropertyLenientNumbers(t *testing.T) {
	req := validRequest()
	req.Price = dto.FlexInt{}
	req.Bedrooms = dto.FlexInt{}
	req.Bathrooms = dto.FlexInt{}
	req.Guests = dto.FlexInt{}

	p, errs := NormalizeProperty(req)
	require.Nil(t, errs)
	assert.Equal(t, 0, p.Price)
	assert.Equal(t, 1, p.Bedrooms)
	assert.Equal(t, 1, p.Bathrooms)
	assert.Equal(t, 1, p.Guests)
}

func TestNormalizePropertyRejectsNegativeCounts(t *testing.T) {
	req := validRequest()
	req.Price = dto.IntValue(-1)
	req.Guests = dto.IntValue(0)

	p, errs := NormalizeProperty(req)
	require.Nil(t, p)
	assert.Len(t, errs, 2)
}

func TestNormalizeTypeTags(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		tags    []string
		unknown []string
	}{
		{"array input", []string{"villa", "suite"}, []string{"villa", "suite"}, nil},
		{"comma joined", []string{"Homestay, Apartment"}, []string{"homestay", "apartment"}, nil},
		{"dedupes and trims", []string{" villa ", "villa,VILLA"}, []string{"villa"}, nil},
		{"unknown tag", []string{"villa,treehouse"}, []string{"villa"}, []string{"treehouse"}},
		{"blanks dropped", []string{",, ,"}, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tags, unknown := NormalizeTypeTags(tc.in)
			assert.Equal(t, tc.tags, tags)
			assert.Equal(t, tc.unknown, unknown)
		})
	}
}

func TestNormalizePropertyGalleryDedupe(t *testing.T) {
	req := validRequest()
	req.Images = dto.StringList{"/images/villa.jpg", "/images/a.jpg", "/images/a.jpg", "/images/b.jpg"}

	p, errs := NormalizeProperty(req)
	require.Nil(t, errs)
	// The cover repeat and the duplicate drop out; order is preserved.
	assert.Equal(t, []string{"/images/a.jpg", "/images/b.jpg"}, []string(p.Images))
}

func TestNormalizePropertyGalleryCap(t *testing.T) {
	req := validRequest()
	var gallery dto.StringList
	for i := 0; i < 25; i++ {
		gallery = append(gallery, fmt.Sprintf("/images/g-%d.jpg", i))
	}
	req.Images = gallery

	p, errs := NormalizeProperty(req)
	require.Nil(t, p)
	require.Len(t, errs, 1)
	assert.Equal(t, "images", errs[0].Field)
}

func TestOverlayUpdateKeepsOmittedFields(t *testing.T) {
	existing, errs := NormalizeProperty(validRequest())
	require.Nil(t, errs)

	newPrice := dto.IntValue(9500)
	merged := OverlayUpdate(existing, &dto.PropertyUpdateRequest{Price: &newPrice})

	p, errs := NormalizeProperty(merged)
	require.Nil(t, errs)
	assert.Equal(t, 9500, p.Price)
	assert.Equal(t, existing.Name, p.Name)
	assert.Equal(t, []string(existing.Type), []string(p.Type))
	assert.Equal(t, existing.ImageURL, p.ImageURL)
}

func TestOverlayUpdateReplacesProvidedFields(t *testing.T) {
	existing, _ := NormalizeProperty(validRequest())

	name := "Renamed Villa"
	featured := true
	merged := OverlayUpdate(existing, &dto.PropertyUpdateRequest{
		Name:     &name,
		Featured: &featured,
	})

	p, errs := NormalizeProperty(merged)
	require.Nil(t, errs)
	assert.Equal(t, "Renamed Villa", p.Name)
	assert.True(t, p.Featured)
}

func TestIsImageRef(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"/images/villa.jpg", true},
		{"https://cdn.example.com/v.jpg", true},
		{"http://cdn.example.com/v.jpg", true},
		{"villa", false},
		{"ftp://cdn.example.com/v.jpg", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, IsImageRef(tc.in), "IsImageRef(%q)", tc.in)
	}
}

func TestValidatePartnerInquiry(t *testing.T) {
	errs := ValidatePartnerInquiry(&dto.PartnerInquiryRequest{
		Name:             "Asha Verma",
		Email:            "asha@example.com",
		Phone:            "9876543210",
		PropertyType:     "villa",
		PropertyLocation: "Lucknow",
		Message:          "Interested in listing my villa.",
	})
	assert.Nil(t, errs)

	errs = ValidatePartnerInquiry(&dto.PartnerInquiryRequest{
		Email: "not-an-email",
		Phone: "12345",
	})
	failing := make(map[string]string)
	for _, fe := range errs {
		failing[fe.Field] = fe.Message
	}
	assert.Contains(t, failing, "name")
	assert.Contains(t, failing, "email")
	assert.Equal(t, "must be a 10-digit number", failing["phone"])
}

func TestValidateContactInquiryPhoneOptional(t *testing.T) {
	req := &dto.ContactInquiryRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Booking question",
		Message: "Is the suite available in March?",
	}
	assert.Nil(t, errsOrNil(ValidateContactInquiry(req)))

	req.Phone = "98765"
	errs := ValidateContactInquiry(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func errsOrNil(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

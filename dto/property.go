package dto

// PropertyRequest is the admin create payload: the Property shape minus
// the server-generated id.
type PropertyRequest struct {
	Slug        *string    `json:"slug"`
	Name        string     `json:"name"`
	Type        StringList `json:"type"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Price       FlexInt    `json:"price"`
	Bedrooms    FlexInt    `json:"bedrooms"`
	Bathrooms   FlexInt    `json:"bathrooms"`
	Guests      FlexInt    `json:"guests"`
	Amenities   StringList `json:"amenities"`
	ImageURL    string     `json:"imageUrl"`
	Images      StringList `json:"images"`
	Featured    bool       `json:"featured"`
}

// PropertyUpdateRequest is the partial update payload. Nil means the
// field was omitted and must keep its stored value.
type PropertyUpdateRequest struct {
	Slug        *string     `json:"slug"`
	Name        *string     `json:"name"`
	Type        *StringList `json:"type"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	Price       *FlexInt    `json:"price"`
	Bedrooms    *FlexInt    `json:"bedrooms"`
	Bathrooms   *FlexInt    `json:"bathrooms"`
	Guests      *FlexInt    `json:"guests"`
	Amenities   *StringList `json:"amenities"`
	ImageURL    *string     `json:"imageUrl"`
	Images      *StringList `json:"images"`
	Featured    *bool       `json:"featured"`
}

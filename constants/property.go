package constants

// Property category tags. A property may carry more than one.
const (
	TypeHomestay  = "homestay"
	TypeSuite     = "suite"
	TypeApartment = "apartment"
	TypeVilla     = "villa"
)

// PropertyTypes is the full tag set, in display order.
var PropertyTypes = []string{TypeHomestay, TypeSuite, TypeApartment, TypeVilla}

// CategoryAll bypasses category filtering on the listing page.
const CategoryAll = "all"

// Price brackets for the listing filter. Whole rupees, no minor units.
const (
	PriceBracketAll    = "all"
	PriceBracketBudget = "budget" // <= 3000
	PriceBracketMid    = "mid"    // 3001 - 8000
	PriceBracketLuxury = "luxury" // > 8000
)

const (
	BudgetMaxPrice = 3000
	MidMaxPrice    = 8000
)

// Gallery and upload limits.
const (
	MaxGalleryImages = 20
	MaxUploadBytes   = 10 << 20 // 10 MB
	DefaultImgFolder = "properties"
)

package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/pratapadwait/pratapliving/constants"
	"github.com/pratapadwait/pratapliving/models"
)

// FilterProperties narrows the listing by free-text query, category tag
// and price bracket. The three predicates are ANDed. Pure function of
// its inputs; the caller owns ordering and pagination.
func FilterProperties(list []models.Property, query, category, bracket string) []models.Property {
	out := make([]models.Property, 0, len(list))
	for _, p := range list {
		if !matchesQuery(&p, query) {
			continue
		}
		if !matchesCategory(&p, category) {
			continue
		}
		if !matchesBracket(&p, bracket) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery is a case-insensitive substring match on name OR location.
func matchesQuery(p *models.Property, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}

func matchesCategory(p *models.Property, category string) bool {
	tag := strings.ToLower(strings.TrimSpace(category))
	if tag == "" || tag == constants.CategoryAll {
		return true
	}
	return p.HasType(tag)
}

// matchesBracket checks the fixed price intervals. An unknown bracket
// value behaves like "all" rather than filtering everything out.
func matchesBracket(p *models.Property, bracket string) bool {
	switch bracket {
	case constants.PriceBracketBudget:
		return p.Price <= constants.BudgetMaxPrice
	case constants.PriceBracketMid:
		return p.Price > constants.BudgetMaxPrice && p.Price <= constants.MidMaxPrice
	case constants.PriceBracketLuxury:
		return p.Price > constants.MidMaxPrice
	default:
		return true
	}
}

// NormalizeQuery lowercases, trims and strips diacritics so "Chhota
// Imambara" and "chhotā imāmbāṛā" compare equal.
func NormalizeQuery(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// NewLocationMatcher builds a fuzzy matcher over the distinct locations
// present in the listing.
func NewLocationMatcher(list []models.Property) *closestmatch.ClosestMatch {
	seen := make(map[string]bool)
	locations := make([]string, 0, len(list))
	for _, p := range list {
		loc := NormalizeQuery(p.Location)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		locations = append(locations, loc)
	}
	return closestmatch.New(locations, []int{2, 3})
}

func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

type scoredProperty struct {
	property models.Property
	score    int
}

// SearchProperties ranks the already-filtered listing against a free
// text query, best match first. Properties that score zero are dropped.
func SearchProperties(query string, list []models.Property, cm *closestmatch.ClosestMatch) []models.Property {
	q := NormalizeQuery(query)
	if q == "" {
		return list
	}

	scored := make([]scoredProperty, 0, len(list))
	for _, p := range list {
		if s := scoreProperty(q, &p, cm); s > 0 {
			scored = append(scored, scoredProperty{property: p, score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]models.Property, 0, len(scored))
	for _, sp := range scored {
		out = append(out, sp.property)
	}
	return out
}

func scoreProperty(q string, p *models.Property, cm *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeQuery(p.Name)
	if strings.Contains(name, q) || similarity(q, name) > 0.6 {
		score += 20
	}
	for _, tag := range p.Type {
		if strings.Contains(q, tag) {
			score += 15
			break
		}
	}
	if cm != nil && cm.Closest(q) == NormalizeQuery(p.Location) {
		score += 10
	}
	score += amenityScore(q, p.Amenities)

	return score
}

func amenityScore(q string, amenities []string) int {
	const maxAmenityScore = 12
	score := 0
	for _, amenity := range amenities {
		normalized := NormalizeQuery(amenity)
		if strings.Contains(q, normalized) || similarity(q, normalized) > 0.7 {
			score += 4
			if score >= maxAmenityScore {
				break
			}
		}
	}
	return score
}

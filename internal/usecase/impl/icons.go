package impl

import (
	"slices"
	"strings"
	"unicode"

	"wander/internal/domain/entity"
)

// FallbackIcon is assigned to activities that match no keyword.
const FallbackIcon = "mappin.and.ellipse"

type iconRule struct {
	keywords []string
	icons    []string
}

// iconRules is matched in order against the words of name, category and description.
var iconRules = []iconRule{
	{keywords: []string{"museum", "exhibit", "exhibition", "history", "historic", "monument"}, icons: []string{"building.columns"}},
	{keywords: []string{"gallery", "art", "mural", "sculpture"}, icons: []string{"paintpalette"}},
	{keywords: []string{"library", "bookstore", "books"}, icons: []string{"books.vertical"}},
	{keywords: []string{"theater", "theatre", "opera", "comedy"}, icons: []string{"theatermasks"}},
	{keywords: []string{"cinema", "movie", "film"}, icons: []string{"film"}},
	{keywords: []string{"music", "concert", "jazz", "venue"}, icons: []string{"music.note"}},
	{keywords: []string{"restaurant", "food", "dining", "diner", "eatery", "pizza", "bakery"}, icons: []string{"fork.knife"}},
	{keywords: []string{"cafe", "coffee", "tea"}, icons: []string{"cup.and.saucer"}},
	{keywords: []string{"bar", "pub", "brewery", "beer", "taproom"}, icons: []string{"mug"}},
	{keywords: []string{"winery", "wine", "vineyard"}, icons: []string{"wineglass"}},
	{keywords: []string{"park", "garden", "gardens", "arboretum", "nature"}, icons: []string{"tree"}},
	{keywords: []string{"hike", "hiking", "trail", "trailhead"}, icons: []string{"figure.hiking"}},
	{keywords: []string{"walk", "walking", "tour", "stroll"}, icons: []string{"figure.walk"}},
	{keywords: []string{"beach", "lake", "river", "bay", "waterfront"}, icons: []string{"water.waves"}},
	{keywords: []string{"aquarium"}, icons: []string{"fish"}},
	{keywords: []string{"zoo", "wildlife", "farm", "animals"}, icons: []string{"pawprint"}},
	{keywords: []string{"mountain", "peak", "summit", "canyon"}, icons: []string{"mountain.2"}},
	{keywords: []string{"viewpoint", "overlook", "landmark", "observatory"}, icons: []string{"binoculars"}},
	{keywords: []string{"market", "shopping", "mall", "shop", "boutique"}, icons: []string{"bag"}},
	{keywords: []string{"stadium", "arena", "sports", "golf", "bowling"}, icons: []string{"sportscourt"}},
	{keywords: []string{"amusement", "arcade", "carnival", "entertainment"}, icons: []string{"ticket"}},
	{keywords: []string{"church", "cathedral", "temple", "mission"}, icons: []string{"building.2"}},
	{keywords: []string{"building", "tower", "center", "hall"}, icons: []string{"building"}},
}

// iconPrecedence lists icons that make a weaker near-duplicate redundant.
var iconPrecedence = map[string][]string{
	"building.columns": {"building", "building.2"},
	"building.2":       {"building"},
	"figure.hiking":    {"figure.walk"},
	"fish":             {"water.waves", "pawprint"},
	"wineglass":        {"mug"},
	"mountain.2":       {"tree", "binoculars"},
	"theatermasks":     {"ticket", "music.note"},
}

// PickIcons assigns icons from the lower-cased name, category and description of the activity.
// The result is never empty.
func PickIcons(activity *entity.Activity) []string {
	words := activityWords(activity.Name, activity.Category, activity.Description)

	icons := make([]string, 0, 4)
	for _, rule := range iconRules {
		if !matchesAny(words, rule.keywords) {
			continue
		}
		for _, icon := range rule.icons {
			if !slices.Contains(icons, icon) {
				icons = append(icons, icon)
			}
		}
	}

	icons = pruneIcons(icons)
	if len(icons) == 0 {
		return []string{FallbackIcon}
	}

	return icons
}

func pruneIcons(icons []string) []string {
	redundant := make(map[string]struct{})
	for _, icon := range icons {
		for _, weaker := range iconPrecedence[icon] {
			redundant[weaker] = struct{}{}
		}
	}

	return slices.DeleteFunc(icons, func(icon string) bool {
		_, drop := redundant[icon]

		return drop
	})
}

func activityWords(texts ...string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, text := range texts {
		for _, word := range strings.FieldsFunc(strings.ToLower(text), isWordBreak) {
			words[word] = struct{}{}
		}
	}

	return words
}

func isWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// matchesAny also accepts a plain "s" plural of each keyword.
func matchesAny(words map[string]struct{}, keywords []string) bool {
	for _, keyword := range keywords {
		if _, ok := words[keyword]; ok {
			return true
		}
		if _, ok := words[keyword+"s"]; ok {
			return true
		}
	}

	return false
}

package catalog

import (
	"sort"
	"strings"

	"github.com/printdeck/paperstock/models"
)

// CategoryToken returns the grouping key for a paper name: its
// leading whitespace-delimited token, nominally the brand.
func CategoryToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ProjectCategories groups papers by leading name token. Pure
// read-side projection: no state, deterministic given the same input
// order. Ties within a group keep the store's natural order.
func ProjectCategories(papers []models.PaperType) []models.Category {
	groups := map[string][]models.PaperType{}
	names := []string{}
	for _, paper := range papers {
		token := CategoryToken(paper.Name)
		if token == "" {
			continue
		}
		if _, seen := groups[token]; !seen {
			names = append(names, token)
		}
		groups[token] = append(groups[token], paper)
	}
	sort.Strings(names)

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{
			Name:       name,
			PaperCount: len(groups[name]),
			Papers:     groups[name],
		})
	}
	return categories
}

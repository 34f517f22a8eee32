package catalog

import (
	"strings"

	"pricepeek/internal/domain"
)

// Keyword groups are checked in order and the first hit wins, so a
// "Galaxy Watch" lands in mobiles, not watches. Reordering changes
// observable behavior.
var categoryRules = []struct {
	tag      domain.Category
	keywords []string
}{
	{domain.CategoryMobiles, []string{"phone", "galaxy", "iphone", "pixel"}},
	{domain.CategoryLaptops, []string{"laptop", "macbook", "dell", "keyboard"}},
	{domain.CategoryWatches, []string{"watch", "fitbit"}},
	{domain.CategoryCameras, []string{"camera", "canon", "gopro"}},
	{domain.CategoryAudio, []string{"audio", "sony", "headphone", "speaker"}},
}

// Categorize tags a product from its name and description.
func Categorize(name, desc string) domain.Category {
	text := strings.ToLower(name + " " + desc)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.tag
			}
		}
	}
	return domain.CategoryElectronics
}

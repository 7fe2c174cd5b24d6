package store

import "github.com/osservatorio/observer/core"

// categoryMeta carries the presentation defaults applied when a category
// is first created.
type categoryMeta struct {
	Icon        string
	Description string
}

const defaultCategoryIcon = "📁"

// defaultCategoryMeta is the fixed defaults table for the closed label
// set. Labels outside the table fall back to defaultCategoryIcon and an
// empty description.
var defaultCategoryMeta = map[core.CategoryLabel]categoryMeta{
	core.CategoryLLM: {
		Icon:        "🧠",
		Description: "Modelli linguistici, rilasci e benchmark",
	},
	core.CategoryFrameworks: {
		Icon:        "🛠️",
		Description: "Librerie, toolkit e piattaforme di sviluppo AI",
	},
	core.CategoryHardware: {
		Icon:        "🖥️",
		Description: "GPU, acceleratori e infrastruttura per l'AI",
	},
	core.CategoryMarket: {
		Icon:        "📈",
		Description: "Mercato, investimenti e strategie aziendali",
	},
	core.CategoryOther: {
		Icon:        defaultCategoryIcon,
		Description: "Altre notizie dal mondo dell'intelligenza artificiale",
	},
}

// CategoryDefaults returns the icon and description for a label.
func CategoryDefaults(label core.CategoryLabel) (icon, description string) {
	meta, ok := defaultCategoryMeta[label]
	if !ok {
		return defaultCategoryIcon, ""
	}
	return meta.Icon, meta.Description
}

// NewCategory builds a Category for a label with slug and presentation
// defaults filled in. The ID is assigned by the store on insert.
func NewCategory(label core.CategoryLabel) *core.Category {
	icon, description := CategoryDefaults(label)
	return &core.Category{
		Name:        string(label),
		Slug:        core.Slugify(string(label)),
		Icon:        icon,
		Description: description,
	}
}

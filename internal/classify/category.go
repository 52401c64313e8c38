package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a classification bucket derived from a file extension.
// The built-in set is closed; values outside it are user-defined categories
// introduced through configuration overrides.
type Category string

const (
	CategoryImages        Category = "images"
	CategoryDocuments     Category = "documents"
	CategoryVideos        Category = "videos"
	CategoryAudio         Category = "audio"
	CategoryArchives      Category = "archives"
	CategoryCode          Category = "code"
	CategorySpreadsheets  Category = "spreadsheets"
	CategoryPresentations Category = "presentations"
	CategoryExecutables   Category = "executables"
	CategoryFonts         Category = "fonts"
	CategoryOther         Category = "other"
)

var builtinCategories = []Category{
	CategoryImages,
	CategoryDocuments,
	CategoryVideos,
	CategoryAudio,
	CategoryArchives,
	CategoryCode,
	CategorySpreadsheets,
	CategoryPresentations,
	CategoryExecutables,
	CategoryFonts,
	CategoryOther,
}

var folderTitle = cases.Title(language.English)

// FolderName returns the display folder name for the category. User-defined
// categories are title-cased from their identifier.
func (c Category) FolderName() string {
	switch c {
	case CategoryImages:
		return "Images"
	case CategoryDocuments:
		return "Documents"
	case CategoryVideos:
		return "Videos"
	case CategoryAudio:
		return "Audio"
	case CategoryArchives:
		return "Archives"
	case CategoryCode:
		return "Code"
	case CategorySpreadsheets:
		return "Spreadsheets"
	case CategoryPresentations:
		return "Presentations"
	case CategoryExecutables:
		return "Executables"
	case CategoryFonts:
		return "Fonts"
	case CategoryOther:
		return "Other"
	default:
		return folderTitle.String(string(c))
	}
}

// Glyph returns the display glyph shown next to the folder name.
func (c Category) Glyph() string {
	switch c {
	case CategoryImages:
		return "🖼️"
	case CategoryDocuments:
		return "📄"
	case CategoryVideos:
		return "🎬"
	case CategoryAudio:
		return "🎵"
	case CategoryArchives:
		return "📦"
	case CategoryCode:
		return "💻"
	case CategorySpreadsheets:
		return "📊"
	case CategoryPresentations:
		return "📈"
	case CategoryExecutables:
		return "⚙️"
	case CategoryFonts:
		return "🔤"
	case CategoryOther:
		return "📂"
	default:
		return "📂"
	}
}

// CategoryByName resolves a built-in category from its identifier,
// case-insensitively. Returns false for names outside the built-in set.
func CategoryByName(name string) (Category, bool) {
	candidate := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range builtinCategories {
		if c == candidate {
			return c, true
		}
	}
	return "", false
}

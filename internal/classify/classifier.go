package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// extensionGroups lists the default extension table. Later groups win when
// an extension appears twice, so installer formats such as exe and dmg end
// up under Executables rather than Archives.
var extensionGroups = []struct {
	category   Category
	extensions []string
}{
	{CategoryImages, []string{
		"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "tiff", "tif",
		"ico", "raw", "cr2", "nef", "arw", "dng", "psd", "ai", "eps",
	}},
	{CategoryDocuments, []string{
		"pdf", "doc", "docx", "txt", "md", "rtf", "odt", "pages", "tex",
		"wps", "wpd", "html", "htm", "xml", "json", "yaml", "yml", "toml",
	}},
	{CategoryVideos, []string{
		"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "3gp",
		"mpg", "mpeg", "ogv", "f4v", "asf", "rm", "rmvb", "vob",
	}},
	{CategoryAudio, []string{
		"mp3", "wav", "flac", "aac", "ogg", "wma", "m4a", "opus", "aiff",
		"au", "ra", "3ga", "amr", "awb", "dss", "dvf", "m4b", "m4p", "mmf",
	}},
	{CategoryArchives, []string{
		"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "z", "lzma", "cab",
		"iso", "dmg", "pkg", "deb", "rpm", "msi", "exe", "jar", "war",
	}},
	{CategoryCode, []string{
		"rs", "py", "js", "ts", "java", "cpp", "c", "h", "hpp", "cs", "php",
		"rb", "go", "swift", "kt", "scala", "r", "m", "pl", "sh", "bash",
		"zsh", "fish", "ps1", "bat", "cmd", "sql", "css", "scss", "sass",
		"less", "vue", "jsx", "tsx", "svelte", "elm", "clj", "hs", "ml",
	}},
	{CategorySpreadsheets, []string{"xlsx", "xls", "csv", "ods", "numbers", "tsv"}},
	{CategoryPresentations, []string{"pptx", "ppt", "odp", "key"}},
	{CategoryExecutables, []string{"exe", "msi", "app", "deb", "rpm", "pkg", "dmg"}},
	{CategoryFonts, []string{"ttf", "otf", "woff", "woff2", "eot"}},
}

// ignoredNames are OS artifact files that are never organized.
var ignoredNames = []string{
	"Thumbs.db", "Desktop.ini", ".DS_Store", "Icon\r",
	"desktop.ini", "thumbs.db", "ehthumbs.db",
}

// Classifier resolves files to categories via an immutable extension table
// built once at construction.
type Classifier struct {
	extensions map[string]Category
	ignored    map[string]struct{}
}

// NewClassifier builds a classifier with the default extension table and
// ignore list.
func NewClassifier() *Classifier {
	extensions := make(map[string]Category, 160)
	for _, group := range extensionGroups {
		for _, ext := range group.extensions {
			extensions[ext] = group.category
		}
	}
	ignored := make(map[string]struct{}, len(ignoredNames))
	for _, name := range ignoredNames {
		ignored[name] = struct{}{}
	}
	return &Classifier{extensions: extensions, ignored: ignored}
}

// ApplyOverrides merges configuration-supplied extension mappings over the
// default table. Extensions are stored lowercased without a leading dot.
func (c *Classifier) ApplyOverrides(overrides map[string]Category) {
	for ext, category := range overrides {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || category == "" {
			continue
		}
		c.extensions[ext] = category
	}
}

// AddIgnoredNames extends the ignore list with exact file names.
func (c *Classifier) AddIgnoredNames(names ...string) {
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			c.ignored[name] = struct{}{}
		}
	}
}

// Classify maps a path to its category by lowercased extension lookup.
// Total: unknown or absent extensions resolve to CategoryOther.
func (c *Classifier) Classify(path string) Category {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return CategoryOther
	}
	if category, ok := c.extensions[strings.ToLower(ext)]; ok {
		return category
	}
	return CategoryOther
}

// ExtensionsFor returns the sorted extensions mapped to a category.
func (c *Classifier) ExtensionsFor(category Category) []string {
	var exts []string
	for ext, cat := range c.extensions {
		if cat == category {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// ShouldIgnore reports whether a path names a hidden file or a known OS
// artifact that the scanner must skip.
func (c *Classifier) ShouldIgnore(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := c.ignored[name]
	return ok
}

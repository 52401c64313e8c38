package classify

// SizeCategory is a classification bucket derived from file size.
type SizeCategory string

const (
	SizeTiny   SizeCategory = "tiny"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeHuge   SizeCategory = "huge"
)

const (
	mib = int64(1) << 20
	gib = int64(1) << 30
)

// SizeCategoryForBytes buckets a byte count using fixed thresholds,
// boundaries inclusive on the lower bucket.
func SizeCategoryForBytes(bytes int64) SizeCategory {
	switch {
	case bytes <= mib:
		return SizeTiny
	case bytes <= 10*mib:
		return SizeSmall
	case bytes <= 100*mib:
		return SizeMedium
	case bytes <= gib:
		return SizeLarge
	default:
		return SizeHuge
	}
}

// FolderName returns the display folder name for the size bucket.
func (s SizeCategory) FolderName() string {
	switch s {
	case SizeTiny:
		return "Tiny (< 1MB)"
	case SizeSmall:
		return "Small (1-10MB)"
	case SizeMedium:
		return "Medium (10-100MB)"
	case SizeLarge:
		return "Large (100MB-1GB)"
	case SizeHuge:
		return "Huge (> 1GB)"
	default:
		return string(s)
	}
}

// Glyph returns the display glyph shown next to the folder name.
func (s SizeCategory) Glyph() string {
	switch s {
	case SizeTiny:
		return "🔍"
	case SizeSmall:
		return "📄"
	case SizeMedium:
		return "📁"
	case SizeLarge:
		return "📦"
	case SizeHuge:
		return "🗃️"
	default:
		return "📂"
	}
}

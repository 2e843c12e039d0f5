package config

const (
	defaultStateDir      = "~/.local/share/cubby"
	defaultOtherCategory = "Other"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with the repository defaults. Paths are
// kept in their user-facing form; Load expands them during normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Organize: Organize{
			OtherCategory:   defaultOtherCategory,
			RemoveEmptyDirs: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Categories: DefaultCategories(),
	}
}

// DefaultCategories returns the built-in category table. Order matters: the
// first category claiming an extension wins during classification.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "ico", "tiff"}},
		{Name: "Documents", Extensions: []string{"pdf", "doc", "docx", "txt", "xlsx", "xls", "pptx", "ppt", "odt", "rtf"}},
		{Name: "Videos", Extensions: []string{"mp4", "avi", "mkv", "mov", "flv", "wmv", "webm", "m4v"}},
		{Name: "Audio", Extensions: []string{"mp3", "wav", "flac", "aac", "ogg", "wma", "m4a"}},
		{Name: "Archives", Extensions: []string{"zip", "rar", "7z", "tar", "gz", "bz2", "xz"}},
		{Name: "Code", Extensions: []string{"py", "js", "html", "css", "java", "cpp", "c", "h", "json", "xml", "yaml", "yml"}},
		{Name: "Executables", Extensions: []string{"exe", "msi", "dmg", "pkg", "deb", "rpm", "app"}},
		{Name: "Books", Extensions: []string{"epub", "mobi", "azw", "azw3"}},
	}
}

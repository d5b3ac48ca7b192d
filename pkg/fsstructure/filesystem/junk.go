package filesystem

import (
	"regexp"
)

// junkPatterns match file names the operating system or common tools leave behind.
var junkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^npm-debug\.log$`),
	regexp.MustCompile(`^\..*\.swp$`),
	regexp.MustCompile(`^\.DS_Store$`),
	regexp.MustCompile(`^\.AppleDouble$`),
	regexp.MustCompile(`^\.LSOverride$`),
	regexp.MustCompile(`^Icon\r$`),
	regexp.MustCompile(`^\._.*`),
	regexp.MustCompile(`^\.Spotlight-V100(?:$|/)`),
	regexp.MustCompile(`\.Trashes`),
	regexp.MustCompile(`^__MACOSX$`),
	regexp.MustCompile(`~$`),
	regexp.MustCompile(`^Thumbs\.db$`),
	regexp.MustCompile(`^ehthumbs\.db$`),
	regexp.MustCompile(`^[Dd]esktop\.ini$`),
	regexp.MustCompile(`@eaDir$`),
}

// IsJunk reports whether name is an OS junk file such as .DS_Store or Thumbs.db.
func IsJunk(name string) bool {
	for _, pattern := range junkPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

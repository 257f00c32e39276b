package articles

import (
	"fmt"
	"regexp"
	"time"
)

// fileNamePattern captures an optional YYYY-MM-DD- prefix and the stem in
// front of the last extension.
var fileNamePattern = regexp.MustCompile(`^(?:(\d{4}-\d{2}-\d{2})-)?(.+)\.[^.]+$`)

const fileDateLayout = "2006-01-02"

// FileInfo is the metadata inferred from an article file name.
type FileInfo struct {
	ID string
	// Date is zero when the name has no date prefix.
	Date time.Time
}

// ParseFileName infers id and date from a base name of the form
// [YYYY-MM-DD-]id.ext. Names that do not match, or whose date prefix is not
// a calendar date, fail with ErrMalformedFilename.
func ParseFileName(name string) (FileInfo, error) {
	match := fileNamePattern.FindStringSubmatch(name)
	if match == nil {
		return FileInfo{}, malformedFilenameError(name)
	}

	info := FileInfo{ID: match[2]}
	if match[1] != "" {
		date, err := time.Parse(fileDateLayout, match[1])
		if err != nil {
			return FileInfo{}, malformedFilenameError(fmt.Sprintf("%s (%v)", name, err))
		}
		info.Date = date
	}
	return info, nil
}

package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxCount caps a single generation request.
const MaxCount = 1_000_000

var (
	reFile     = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
	reUUID     = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	reCategory = regexp.MustCompile(`^[A-Za-z0-9 &'-]{1,40}$`)
)

// Count accepts 1..MaxCount.
func Count(n int) bool {
	return n >= 1 && n <= MaxCount
}

// CountString parses a count from text, falling back to def when empty.
func CountString(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, Count(def)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, Count(n)
}

// FileName accepts an output prefix with no directory part.
func FileName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "." || s == ".." || strings.HasPrefix(s, ".") {
		return "", false
	}
	return s, reFile.MatchString(s)
}

func UUID(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reUUID.MatchString(s)
}

// Category validates a single category name.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCategory.MatchString(s)
}

// Categories splits a comma list and validates each entry. Blank entries
// are dropped.
func Categories(s string) ([]string, bool) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, ok := Category(part)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// Page clamps paging parameters.
func Page(pageS, sizeS string) (page, size int) {
	page, err := strconv.Atoi(strings.TrimSpace(pageS))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(strings.TrimSpace(sizeS))
	if err != nil || size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	} // clamp to avoid abuse
	return page, size
}

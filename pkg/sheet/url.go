package sheet

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	docIDRegex       = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	publishedIDRegex = regexp.MustCompile(`/spreadsheets/d/e/([a-zA-Z0-9-_]+)`)
	openIDRegex      = regexp.MustCompile(`[?&]id=([a-zA-Z0-9-_]+)`)
	gidRegex         = regexp.MustCompile(`[#&?]gid=([0-9]+)`)
)

const exportBase = "https://docs.google.com/spreadsheets/d/"

// NormalizeURL rewrites a Google Sheets share link into its CSV export URL
// for the same document and tab. Links it cannot recognise are returned as is.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	gid := "0"
	if m := gidRegex.FindStringSubmatch(raw); m != nil {
		gid = m[1]
	}

	// published-to-web links carry their own "e/" namespace
	if m := publishedIDRegex.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%se/%s/pub?output=csv&gid=%s", exportBase, m[1], gid), nil
	}

	if m := docIDRegex.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s%s/export?format=csv&gid=%s", exportBase, m[1], gid), nil
	}

	if strings.Contains(raw, "docs.google.com") {
		if m := openIDRegex.FindStringSubmatch(raw); m != nil {
			return fmt.Sprintf("%s%s/export?format=csv&gid=%s", exportBase, m[1], gid), nil
		}
	}

	return raw, nil
}

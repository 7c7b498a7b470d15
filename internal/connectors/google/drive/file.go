package drive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MimeTypePDF is the MIME type listed by default.
const MimeTypePDF = "application/pdf"

// listFields restricts list responses to what the pipeline consumes.
const listFields = "nextPageToken, files(id, name)"

// FolderQuery builds the Drive search query for non-trashed files of one
// MIME type directly inside a folder.
func FolderQuery(folderID, mimeType string) string {
	return fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false",
		escapeQuery(folderID), escapeQuery(mimeType))
}

// escapeQuery escapes a value for use inside a single-quoted query string.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// LocalName returns the file name a remote file is stored under.
// Drive names may contain slashes; only the final element is kept so a
// download can never escape the download directory. Returns "" when the
// name has no usable final element.
func LocalName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case ".", "..", "/":
		return ""
	}
	return base
}

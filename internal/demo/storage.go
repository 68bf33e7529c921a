package demo

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ObjectStore fakes the storage bucket in demo mode: uploads return a
// synthetic path and no bytes are kept. Public URLs are derived
// deterministically from the path so links stay stable within a process.
type ObjectStore struct {
	baseURL string
	now     func() time.Time
}

// NewObjectStore returns an ObjectStore that roots public URLs at baseURL.
func NewObjectStore(baseURL string) *ObjectStore {
	return &ObjectStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Upload records nothing and returns a synthetic object path embedding the
// upload time and sanitized file name.
func (o *ObjectStore) Upload(filename string) string {
	return fmt.Sprintf("demo/%d_%s", o.now().UnixMilli(), sanitizeFilename(filename))
}

// PublicURL derives the public URL for a previously "uploaded" object path.
func (o *ObjectStore) PublicURL(objectPath string) string {
	return o.baseURL + "/uploads/" + strings.TrimLeft(objectPath, "/")
}

func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

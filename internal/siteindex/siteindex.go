// Package siteindex maintains an index page
// for a directory of generated documentation files.
package siteindex

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"braces.dev/errtrace"
	"github.com/bmatcuk/doublestar/v4"
)

var (
	//go:embed tmpl/index.html
	_tmplFS embed.FS

	_indexTmpl = template.Must(
		template.New("index.html").ParseFS(_tmplFS, "tmpl/index.html"),
	)
)

// File is one documentation file listed on the index page.
type File struct {
	// Name is the file's base name and the link target.
	Name string

	// Label describes the file, e.g. "HTML document".
	Label string

	// Tag is the page template the file was generated with,
	// if its name records one. Possibly empty.
	Tag string

	// Modified is the formatted modification time.
	Modified string
}

type indexData struct {
	Files []File
	Dir   string
}

// Writer generates index pages linking to the documentation files
// in a directory. It remembers what each directory last looked like
// and skips the rewrite when nothing changed.
//
// Writer is safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	seen map[string]string // directory -> fingerprint
}

// Refresh scans dir for documentation files and rewrites its
// index.html if the set of files changed since the last call.
// It reports the index path and whether it rewrote the file.
func (w *Writer) Refresh(dir string) (string, bool, error) {
	indexPath := filepath.Join(dir, "index.html")

	names, err := doublestar.Glob(os.DirFS(dir), "*.{html,md}")
	if err != nil {
		return "", false, errtrace.Wrap(err)
	}

	type entry struct {
		name string
		mod  time.Time
	}
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		if name == "index.html" {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue // deleted while scanning
			}
			return "", false, errtrace.Wrap(err)
		}
		entries = append(entries, entry{name: name, mod: info.ModTime()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	var fp strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&fp, "%s\x00%d\n", e.name, e.mod.UnixNano())
	}

	w.mu.Lock()
	prev, ok := w.seen[dir]
	unchanged := ok && prev == fp.String()
	if !unchanged {
		if w.seen == nil {
			w.seen = make(map[string]string)
		}
		w.seen[dir] = fp.String()
	}
	w.mu.Unlock()
	if unchanged {
		return indexPath, false, nil
	}

	// Newest first on the page.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].mod.Equal(entries[j].mod) {
			return entries[i].mod.After(entries[j].mod)
		}
		return entries[i].name < entries[j].name
	})

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, errtrace.Wrap(err)
	}

	data := indexData{Dir: absDir}
	for _, e := range entries {
		data.Files = append(data.Files, File{
			Name:     e.name,
			Label:    fileLabel(e.name),
			Tag:      templateTag(e.name),
			Modified: e.mod.Format("2006-01-02 15:04:05"),
		})
	}

	var buf bytes.Buffer
	if err := _indexTmpl.ExecuteTemplate(&buf, "index.html", &data); err != nil {
		return "", false, errtrace.Wrap(err)
	}
	if err := os.WriteFile(indexPath, buf.Bytes(), 0o644); err != nil {
		return "", false, errtrace.Wrap(err)
	}
	return indexPath, true, nil
}

// fileLabel describes a file by its extension, e.g. "HTML document".
func fileLabel(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.ToUpper(ext) + " document"
}

// templateTag extracts the page template recorded in a generated
// HTML file's name, e.g. "calc_modern.html" was generated with the
// modern template. Returns "" if the name records none.
func templateTag(name string) string {
	if !strings.EqualFold(filepath.Ext(name), ".html") {
		return ""
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

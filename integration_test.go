package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/docu/internal/html"
	"go.abhg.dev/docu/internal/iotest"
	xhtml "golang.org/x/net/html"
)

// Generates documentation for a sample file in every format and
// page template, serves the output directory, and follows every
// link reachable from the index page.
func TestIntegration_noBrokenLinks(t *testing.T) {
	t.Parallel()

	srcPath := writeSampleSource(t)
	outDir := t.TempDir()

	runs := [][]string{
		{"-format", "markdown", "-output-dir", outDir, "-index", srcPath},
	}
	for _, tmpl := range html.TemplateNames() {
		runs = append(runs, []string{
			"-template", tmpl, "-output-dir", outDir, "-index", srcPath,
		})
	}

	for _, args := range runs {
		exitCode := (&mainCmd{
			Stdout: iotest.Writer(t),
			Stderr: iotest.Writer(t),
		}).Run(args)
		require.Zero(t, exitCode, "docu %v", args)
	}

	srv := httptest.NewServer(http.FileServer(http.FS(os.DirFS(outDir))))
	t.Cleanup(srv.Close)

	w := newURLWalker(t)
	w.Walk(srv.URL)

	for _, tmpl := range html.TemplateNames() {
		assert.Contains(t, w.seen, srv.URL+"/sample_"+tmpl+".html",
			"the index page must link to the %v page", tmpl)
	}
	assert.Contains(t, w.seen, srv.URL+"/sample.md")
}

// urlWalker visits all local pages of the generated site
// and verifies that none of the links are broken.
type urlWalker struct {
	t      *testing.T
	host   string
	seen   map[string]struct{}
	queue  []*url.URL
	client *http.Client
}

func newURLWalker(t *testing.T) *urlWalker {
	return &urlWalker{
		t:      t,
		seen:   make(map[string]struct{}),
		client: http.DefaultClient,
	}
}

func (w *urlWalker) Walk(startPage string) {
	u, err := url.Parse(startPage)
	require.NoError(w.t, err)
	w.host = u.Host

	w.queue = append(w.queue, u)
	for len(w.queue) > 0 {
		var u *url.URL
		u, w.queue = w.queue[0], w.queue[1:]
		w.visit(u)
	}
}

func (w *urlWalker) visit(dest *url.URL) {
	if _, ok := w.seen[dest.String()]; ok {
		return
	}
	w.seen[dest.String()] = struct{}{}

	w.t.Log("Visiting", dest)
	res, err := w.client.Get(dest.String())
	if !assert.NoError(w.t, err, "error visiting %v", dest) {
		return
	}
	defer res.Body.Close()
	if !assert.Equal(w.t, 200, res.StatusCode, "bad response from %v: %v", dest, res.Status) {
		return
	}

	doc, err := xhtml.Parse(res.Body)
	if !assert.NoError(w.t, err, "error reading %v", dest) {
		return
	}

	for _, link := range cascadia.MustCompile("a[href]").MatchAll(doc) {
		for _, attr := range link.Attr {
			if attr.Key == "href" {
				w.push(dest, attr.Val)
				break
			}
		}
	}
}

func (w *urlWalker) push(from *url.URL, href string) {
	u, err := url.Parse(href)
	if !assert.NoError(w.t, err, "bad href %q on page %v", href, from) {
		return
	}

	// In-page anchors point back at the page being read.
	u.Fragment = ""
	if u.Host == "" && u.Path == "" {
		return
	}

	if len(u.Host) > 0 {
		if u.Host == w.host {
			w.queue = append(w.queue, u)
		}
		return
	}

	w.queue = append(w.queue, from.ResolveReference(u))
}

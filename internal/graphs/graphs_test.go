package graphs

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/psidex/graphed/internal/geom"
	"github.com/psidex/graphed/internal/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Seed(
		[]geom.Point{geom.Pt(200, 200), geom.Pt(500, 200), geom.Pt(400, 400)},
		[][2]int{{0, 1}, {1, 2}},
	)
	require.NoError(t, err)
	return g
}

// collect walks the document and returns every element with the given tag.
func collect(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var visitNode func(*html.Node)
	visitNode = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visitNode(c)
		}
	}
	visitNode(n)
	return found
}

func TestEChartsRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewECharts(600, 600).Render(&buf, testGraph(t)))

	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	scripts := collect(doc, "script")
	require.NotEmpty(t, scripts)

	var inline strings.Builder
	for _, s := range scripts {
		for c := s.FirstChild; c != nil; c = c.NextSibling {
			inline.WriteString(c.Data)
		}
	}
	for _, name := range []string{`"p1"`, `"p2"`, `"p3"`} {
		assert.Contains(t, inline.String(), name)
	}
	assert.Contains(t, inline.String(), `"layout":"none"`)
}

func TestEChartsRenderToFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "snapshot")

	path, err := NewECharts(300, 200).RenderToFile(base, testGraph(t))
	require.NoError(t, err)
	assert.Equal(t, base+".html", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graphed snapshot")
}

func findChrome() bool {
	for _, name := range []string{"headless-shell", "chromium", "chromium-browser", "google-chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func TestScreenshot(t *testing.T) {
	if testing.Short() || !findChrome() {
		t.Skip("needs a local Chrome")
	}
	dir := t.TempDir()
	htmlPath, err := NewECharts(320, 240).RenderToFile(filepath.Join(dir, "snapshot"), testGraph(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pngPath := filepath.Join(dir, "snapshot.png")
	require.NoError(t, Screenshot(ctx, htmlPath, pngPath, 320, 240))

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

package graphs

import (
	"io"

	"github.com/psidex/graphed/internal/graph"
)

// Renderer produces a standalone snapshot of a graph. Renderers only read the
// graph.
type Renderer interface {
	Render(w io.Writer, g *graph.Graph) error
}

// FileRenderer extends Renderer with writing straight to disk.
type FileRenderer interface {
	Renderer

	// filename should be the desired file name without an extension.
	RenderToFile(filename string, g *graph.Graph) (string, error)
}

package graphs

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/psidex/graphed/internal/graph"
	"github.com/psidex/graphed/internal/surface"
)

// ECharts defines a FileRenderer that renders a go-echarts HTML page with every
// point pinned at its coordinates.
type ECharts struct {
	Title  string
	Width  int
	Height int
}

var _ FileRenderer = (*ECharts)(nil)

func NewECharts(width, height int) *ECharts {
	return &ECharts{
		Title:  "graphed snapshot",
		Width:  width,
		Height: height,
	}
}

// nodeName labels a point by its handle so that coincident points stay apart.
func nodeName(id graph.PointID) string {
	return fmt.Sprintf("p%d", id)
}

func (e ECharts) nodesAndLinks(g *graph.Graph) ([]opts.GraphNode, []opts.GraphLink) {
	nodes := make([]opts.GraphNode, 0, g.Len())
	for _, id := range g.IDs() {
		p, _ := g.Point(id)
		nodes = append(nodes, opts.GraphNode{
			Name:       nodeName(id),
			X:          float32(p.X),
			Y:          float32(p.Y),
			SymbolSize: surface.PointSize,
			ItemStyle:  &opts.ItemStyle{Color: surface.ColorInk},
		})
	}

	links := make([]opts.GraphLink, 0, g.SegmentCount())
	for _, seg := range g.Segments() {
		links = append(links, opts.GraphLink{
			Source: nodeName(seg.P1),
			Target: nodeName(seg.P2),
		})
	}

	return nodes, links
}

func (e ECharts) chart(g *graph.Graph) *charts.Graph {
	nodes, links := e.nodesAndLinks(g)

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: e.Title,
			Width:     fmt.Sprintf("%dpx", e.Width),
			Height:    fmt.Sprintf("%dpx", e.Height),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	chart.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "none",
				Draggable: opts.Bool(false),
				Roam:      opts.Bool(true),
			},
		),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: surface.ColorInk,
			Width: surface.SegmentWidth,
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    surface.ColorInk,
			Position: "top",
		}),
	)
	return chart
}

func (e ECharts) Render(w io.Writer, g *graph.Graph) error {
	page := components.NewPage()
	page.PageTitle = e.Title
	page.AddCharts(e.chart(g))
	return page.Render(w)
}

// RenderToFile writes filename.html and returns the path it wrote.
func (e ECharts) RenderToFile(filename string, g *graph.Graph) (string, error) {
	filename = filename + ".html"

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := e.Render(f, g); err != nil {
		return "", fmt.Errorf("render %s: %w", filename, err)
	}
	return filename, nil
}

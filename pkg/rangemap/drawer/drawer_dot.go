package drawer

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-almanac/pkg/rangemap/measure"
)

// DOTDrawer writes the stage chain as a Graphviz digraph.
type DOTDrawer struct {
	graph graph.Graph[string, string]
	wrt   io.Writer
}

// NewDOTDrawer creates a drawer writing to wrt.
func NewDOTDrawer(wrt io.Writer) *DOTDrawer {
	return &DOTDrawer{
		graph: graph.New(graph.StringHash, graph.Directed()),
		wrt:   wrt,
	}
}

// AddStage adds a stage vertex labelled with its rule count.
func (d *DOTDrawer) AddStage(name string, rules int) error {
	err := d.graph.AddVertex(name,
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("rules", strconv.Itoa(rules)),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds an edge from parent to stage.
func (d *DOTDrawer) AddLink(parentName, stageName string) error {
	err := d.graph.AddEdge(parentName, stageName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, stageName)
	}

	return nil
}

// Draw renders the graph.
func (d *DOTDrawer) Draw() error {
	err := dot(d.graph, d.wrt)
	if err != nil {
		return errors.Wrap(err, "unable to write dot graph")
	}

	return nil
}

const maxRGB = 240

// AddMeasure labels every stage with its average duration and every link with the number of
// intervals it carried. Links carrying the most intervals are red, the fewest blue.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	minOut, maxOut := int64(math.MaxInt64), int64(0)
	for _, mt := range metrics {
		for _, info := range mt.AllTransports() {
			minOut = min(minOut, info.IntervalsOut)
			maxOut = max(maxOut, info.IntervalsOut)
		}
	}

	for name, mt := range metrics {
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrapf(err, "unable to get vertex %s properties", name)
		}

		if mt.Calls() > 0 {
			properties.Attributes["xlabel"] = fmt.Sprintf("%s, fan-out %.2f", mt.AVGDuration(), mt.MaxFanOut())
		}

		for parent, info := range mt.AllTransports() {
			colour, err := scale(info.IntervalsOut, minOut, maxOut)
			if err != nil {
				return err
			}

			err = d.graph.UpdateEdge(parent, name,
				graph.EdgeAttribute("label", fmt.Sprintf("%d -> %d", info.IntervalsIn, info.IntervalsOut)),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", colour),
			)
			if err != nil {
				return errors.Wrapf(err, "unable to update edge from %s to %s", parent, name)
			}
		}
	}

	return nil
}

func scale(value, low, high int64) (string, error) {
	fraction := 1.0
	if high > low {
		fraction = float64(value-low) / float64(high-low)
	}

	red := maxRGB * fraction
	blue := maxRGB - red

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	rankdir="LR";
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} ]{{end}};
	{{end}}
}
`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
}

func dot(gra graph.Graph[string, string], wrt io.Writer) error {
	desc, err := generateDOT(gra)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// generateDOT lists vertices then edges, both sorted, so the output is stable.
func generateDOT(gra graph.Graph[string, string]) (description, error) {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
	}
	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Strings(vertices)

	var edges []statement
	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		attributes := make(map[string]string, len(sourceProperties.Attributes))
		htmlAttributes := make(map[string]string)
		for k, v := range sourceProperties.Attributes {
			attributes[k] = v
		}
		if xlabel, ok := attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)
			delete(attributes, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceAttributes: attributes,
			HTMLAttributes:   htmlAttributes,
		})

		for target, edge := range adjacencyMap[vertex] {
			edges = append(edges, statement{
				Source:         vertex,
				Target:         target,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}

		return edges[i].Target < edges[j].Target
	})
	desc.Statements = append(desc.Statements, edges...)

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)

// ABOUTME: Stakeholder map rendered as GraphViz DOT source
// ABOUTME: Account -> projects -> stakeholders, plus connection edges between people
package viz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/Akshada2906/circle-insights/models"
)

// GraphStats summarizes a rendered graph.
type GraphStats struct {
	Nodes int
	Edges int
}

// StakeholderGraph renders an account with its projects and stakeholders.
// Names listed in a project's connected_with field or a stakeholder's
// connections are linked to the matching stakeholder, or to a plain person
// node when no stakeholder carries that name.
func StakeholderGraph(account models.Account, projects []models.Project, stakeholders []models.Stakeholder) (string, GraphStats, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", GraphStats{}, fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", GraphStats{}, fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLabel(account.Name + " stakeholder map")
	graph.SetRankDir(cgraph.LRRank)

	b := &graphBuilder{graph: graph, people: map[string]*cgraph.Node{}}

	root, err := b.node("account:"+account.ID, account.Name, cgraph.DoubleCircleShape)
	if err != nil {
		return "", GraphStats{}, err
	}

	projectNodes := make(map[string]*cgraph.Node, len(projects))
	for _, p := range projects {
		n, err := b.node("project:"+p.ID, fmt.Sprintf("%s\n[%s]", p.Name, p.Circle), cgraph.BoxShape)
		if err != nil {
			return "", GraphStats{}, err
		}
		projectNodes[p.ID] = n
		if err := b.edge(root, n, ""); err != nil {
			return "", GraphStats{}, err
		}
	}

	stakeholderNodes := make(map[string]*cgraph.Node, len(stakeholders))
	for _, st := range stakeholders {
		label := fmt.Sprintf("%s\n%s (%d)", st.Name, st.Designation, st.RelationshipScore)
		n, err := b.node("stakeholder:"+st.ID, label, cgraph.EllipseShape)
		if err != nil {
			return "", GraphStats{}, err
		}
		if st.IsChampion {
			n.SetColor("darkgreen")
		}
		stakeholderNodes[st.ID] = n
		b.people[strings.ToLower(st.Name)] = n

		parent := root
		if pn, ok := projectNodes[st.ProjectID]; ok {
			parent = pn
		}
		if err := b.edge(parent, n, ""); err != nil {
			return "", GraphStats{}, err
		}
	}

	for _, p := range projects {
		for _, name := range p.ConnectedNames() {
			person, err := b.person(name)
			if err != nil {
				return "", GraphStats{}, err
			}
			if err := b.edge(projectNodes[p.ID], person, "connected"); err != nil {
				return "", GraphStats{}, err
			}
		}
	}

	for _, st := range stakeholders {
		for _, name := range st.Connections {
			person, err := b.person(name)
			if err != nil {
				return "", GraphStats{}, err
			}
			if err := b.edge(stakeholderNodes[st.ID], person, "knows"); err != nil {
				return "", GraphStats{}, err
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", GraphStats{}, fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), GraphStats{Nodes: b.nodes, Edges: b.edges}, nil
}

type graphBuilder struct {
	graph  *cgraph.Graph
	people map[string]*cgraph.Node
	nodes  int
	edges  int
}

func (b *graphBuilder) node(name, label string, shape cgraph.Shape) (*cgraph.Node, error) {
	n, err := b.graph.CreateNodeByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create node %s: %w", name, err)
	}
	n.SetLabel(label)
	n.SetShape(shape)
	b.nodes++
	return n, nil
}

// person returns the node for a named person, creating a plain one on first use.
func (b *graphBuilder) person(name string) (*cgraph.Node, error) {
	key := strings.ToLower(name)
	if n, ok := b.people[key]; ok {
		return n, nil
	}
	n, err := b.node("person:"+key, name, cgraph.PlainTextShape)
	if err != nil {
		return nil, err
	}
	b.people[key] = n
	return n, nil
}

func (b *graphBuilder) edge(from, to *cgraph.Node, label string) error {
	e, err := b.graph.CreateEdgeByName("", from, to)
	if err != nil {
		return fmt.Errorf("failed to create edge: %w", err)
	}
	if label != "" {
		e.SetLabel(label)
	}
	b.edges++
	return nil
}

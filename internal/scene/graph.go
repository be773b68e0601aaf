package scene

import (
	"github.com/google/uuid"

	"sphere-scene/internal/light"
)

// Node is one entry in the graph. Object is one of *Mesh, *light.PointLight,
// *light.Helper or *camera.Perspective; Draw skips anything that is not a mesh or helper.
type Node struct {
	ID     uuid.UUID
	Name   string
	Object any
}

// Graph is an insert-only list of scene objects, drawn in insertion order.
type Graph struct {
	nodes []Node
}

// Add inserts obj and returns its node id.
func (g *Graph) Add(name string, obj any) uuid.UUID {
	id := uuid.New()
	g.nodes = append(g.nodes, Node{ID: id, Name: name, Object: obj})
	return id
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Each calls fn for every node in insertion order.
func (g *Graph) Each(fn func(Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// Get returns the node with the given id.
func (g *Graph) Get(id uuid.UUID) (Node, bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Drawer receives the drawable nodes of a graph. Mesh resources are keyed by node id.
type Drawer interface {
	DrawMesh(id uuid.UUID, m *Mesh) error
	DrawHelper(h *light.Helper)
}

// Draw walks the graph in insertion order and hands meshes and light helpers to d.
// Lights and cameras are not drawn. The first mesh error stops the walk.
func (g *Graph) Draw(d Drawer) error {
	for _, n := range g.nodes {
		switch o := n.Object.(type) {
		case *Mesh:
			if err := d.DrawMesh(n.ID, o); err != nil {
				return err
			}
		case *light.Helper:
			d.DrawHelper(o)
		}
	}
	return nil
}

package main

// Topology describes how a Mesh's index buffer maps onto triangles.
type Topology int

const (
	TriangleList Topology = iota
	TriangleStrip
)

// Vertex is a model-space input vertex. ViewDirection is populated by the
// vertex stage, never by a loader.
type Vertex struct {
	Position      Vector3
	Color         ColorRGB
	UV            Vector2
	Normal        Vector3
	Tangent       Vector3
	ViewDirection Vector3
}

// NewVertex returns a vertex defaulted to the reference renderer's
// magenta placeholder color, matching dae::Vertex's default constructor.
func NewVertex(position Vector3, uv Vector2) Vertex {
	return Vertex{Position: position, Color: ColorMagenta, UV: uv}
}

// VertexOut is a post-transform vertex. Position.X/Y are in screen-space
// pixels, Position.Z is the interpolated depth in [0,1], and Position.W
// preserves clip-space w for perspective-correct interpolation.
type VertexOut struct {
	Position      Vector4
	Color         ColorRGB
	UV            Vector2
	Normal        Vector3
	Tangent       Vector3
	ViewDirection Vector3
}

// Mesh owns a model-space vertex/index buffer and the screen-space buffer
// the vertex stage writes into every frame.
type Mesh struct {
	Vertices    []Vertex
	Indices     []uint32
	Topology    Topology
	VerticesOut []VertexOut
	WorldMatrix Matrix
}

// NewMesh constructs a mesh with the given topology and an identity world
// matrix. It panics if the index buffer violates the topology's arity
// invariant (a malformed mesh is a loader bug, not a runtime condition).
func NewMesh(vertices []Vertex, indices []uint32, topology Topology) *Mesh {
	switch topology {
	case TriangleList:
		if len(indices)%3 != 0 {
			panic("NewMesh: TriangleList index count must be a multiple of 3")
		}
	case TriangleStrip:
		if len(indices) < 3 {
			panic("NewMesh: TriangleStrip needs at least 3 indices")
		}
	default:
		panic("NewMesh: unknown topology")
	}

	return &Mesh{
		Vertices:    vertices,
		Indices:     indices,
		Topology:    topology,
		WorldMatrix: IdentityMatrix(),
	}
}

// ensureVerticesOut lazily sizes VerticesOut to match Vertices, the way the
// reference VertexTransformationFunction does on its first call.
func (m *Mesh) ensureVerticesOut() {
	if len(m.VerticesOut) != len(m.Vertices) {
		m.VerticesOut = make([]VertexOut, len(m.Vertices))
	}
}

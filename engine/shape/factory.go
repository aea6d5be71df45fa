package shape

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/gituser12981u2/3D-Engine/common"
)

// Parallel generation kicks in once a procedural shape has at least this many
// rings; below it the fan-out overhead exceeds the work.
const parallelRingThreshold = 8

// ShapeFactory produces mesh builders for common procedural shapes. Large
// procedural shapes (spheres, cones with many segments) are generated in
// parallel on a reusable worker pool; each worker writes a disjoint,
// index-addressed span of the output so results are deterministic.
type ShapeFactory interface {
	// Cube builds a cube centered on the origin.
	//
	// Parameters:
	//   - size: the edge length
	//   - color: the color applied to all vertices
	//
	// Returns:
	//   - *MeshBuilder: a builder over the cube geometry
	Cube(size float32, color common.Color) *MeshBuilder

	// Sphere builds a UV sphere centered on the origin.
	//
	// Parameters:
	//   - radius: the sphere radius
	//   - segments: longitudinal subdivisions (minimum 3)
	//   - rings: latitudinal subdivisions (minimum 2)
	//   - color: the color applied to all vertices
	//
	// Returns:
	//   - *MeshBuilder: a builder over the sphere geometry
	Sphere(radius float32, segments, rings int, color common.Color) *MeshBuilder

	// Cone builds a cone with its apex up and base down, centered on the origin.
	//
	// Parameters:
	//   - radius: the base radius
	//   - height: the apex-to-base height
	//   - segments: base subdivisions (minimum 3)
	//   - color: the color applied to all vertices
	//
	// Returns:
	//   - *MeshBuilder: a builder over the cone geometry
	Cone(radius, height float32, segments int, color common.Color) *MeshBuilder

	// Plane builds a flat rectangle in the xz plane facing up.
	//
	// Parameters:
	//   - width: extent along x
	//   - depth: extent along z
	//   - color: the color applied to all vertices
	//
	// Returns:
	//   - *MeshBuilder: a builder over the plane geometry
	Plane(width, depth float32, color common.Color) *MeshBuilder
}

type shapeFactory struct {
	genPool    worker.DynamicWorkerPool
	genWorkers int
	nextTaskID int
}

var _ ShapeFactory = &shapeFactory{}

// ShapeFactoryBuilderOption is a functional option for configuring a new ShapeFactory.
type ShapeFactoryBuilderOption func(*shapeFactory)

// NewShapeFactory creates a shape factory with a generation worker pool sized
// to the machine by default.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - ShapeFactory: the new factory
func NewShapeFactory(options ...ShapeFactoryBuilderOption) ShapeFactory {
	f := &shapeFactory{
		genWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(f)
	}
	// Queue size of 256 covers per-ring fan-out for large spheres with headroom.
	f.genPool = worker.NewDynamicWorkerPool(f.genWorkers, 256, 1*time.Second)
	return f
}

// WithGenWorkers overrides the number of generation workers.
//
// Parameters:
//   - n: the worker count (values below 1 are clamped to 1)
//
// Returns:
//   - ShapeFactoryBuilderOption: the option to pass to NewShapeFactory
func WithGenWorkers(n int) ShapeFactoryBuilderOption {
	return func(f *shapeFactory) {
		f.genWorkers = max(n, 1)
	}
}

func (f *shapeFactory) Cube(size float32, color common.Color) *MeshBuilder {
	h := size / 2.0

	vertices := []common.Vertex{
		// front face
		common.NewVertex(-h, -h, h, color),
		common.NewVertex(h, -h, h, color),
		common.NewVertex(h, h, h, color),
		common.NewVertex(-h, h, h, color),
		// back face
		common.NewVertex(-h, -h, -h, color),
		common.NewVertex(h, -h, -h, color),
		common.NewVertex(h, h, -h, color),
		common.NewVertex(-h, h, -h, color),
	}

	indices := []uint32{
		0, 1, 2, 0, 2, 3, // front
		4, 6, 5, 4, 7, 6, // back
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		3, 2, 6, 3, 6, 7, // top
		0, 4, 5, 0, 5, 1, // bottom
	}

	return NewMeshBuilder(vertices, common.PrimitiveTriangle).WithIndices(indices)
}

func (f *shapeFactory) Sphere(radius float32, segments, rings int, color common.Color) *MeshBuilder {
	segments = max(segments, 3)
	rings = max(rings, 2)

	vertsPerRing := segments + 1
	vertices := make([]common.Vertex, (rings+1)*vertsPerRing)
	indices := make([]uint32, rings*segments*6)

	genRing := func(ring int) {
		phi := math.Pi * float64(ring) / float64(rings)
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))

		base := ring * vertsPerRing
		for segment := 0; segment <= segments; segment++ {
			theta := 2.0 * math.Pi * float64(segment) / float64(segments)
			x := radius * sinPhi * float32(math.Cos(theta))
			y := radius * cosPhi
			z := radius * sinPhi * float32(math.Sin(theta))
			vertices[base+segment] = common.NewVertex(x, y, z, color)
		}

		// The last ring contributes vertices only.
		if ring == rings {
			return
		}
		ringStart := uint32(ring * vertsPerRing)
		nextRingStart := uint32((ring + 1) * vertsPerRing)
		idx := ring * segments * 6
		for segment := 0; segment < segments; segment++ {
			s := uint32(segment)
			indices[idx+0] = ringStart + s
			indices[idx+1] = nextRingStart + s
			indices[idx+2] = nextRingStart + s + 1
			indices[idx+3] = ringStart + s
			indices[idx+4] = nextRingStart + s + 1
			indices[idx+5] = ringStart + s + 1
			idx += 6
		}
	}

	if rings+1 < parallelRingThreshold {
		for ring := 0; ring <= rings; ring++ {
			genRing(ring)
		}
		return NewMeshBuilder(vertices, common.PrimitiveTriangle).WithIndices(indices)
	}

	// Fan each ring out to the generation pool. Rings write disjoint spans of
	// the pre-sized output slices, so no locking is needed and the result is
	// identical to the serial path. A WaitGroup provides the completion
	// barrier since pool workers persist across calls.
	var wg sync.WaitGroup
	for ring := 0; ring <= rings; ring++ {
		wg.Add(1)
		r := ring // capture for closure
		f.nextTaskID++
		f.genPool.SubmitTask(worker.Task{
			ID: f.nextTaskID,
			Do: func() (any, error) {
				defer wg.Done()
				genRing(r)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return NewMeshBuilder(vertices, common.PrimitiveTriangle).WithIndices(indices)
}

func (f *shapeFactory) Cone(radius, height float32, segments int, color common.Color) *MeshBuilder {
	segments = max(segments, 3)

	// apex + base ring + base center
	vertices := make([]common.Vertex, segments+2)
	vertices[0] = common.NewVertex(0, height/2.0, 0, color)

	for i := 0; i < segments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(segments)
		x := radius * float32(math.Cos(angle))
		z := radius * float32(math.Sin(angle))
		vertices[i+1] = common.NewVertex(x, -height/2.0, z, color)
	}

	centerIdx := uint32(segments + 1)
	vertices[centerIdx] = common.NewVertex(0, -height/2.0, 0, color)

	indices := make([]uint32, 0, segments*6)
	for i := 0; i < segments; i++ {
		next := uint32((i+1)%segments) + 1
		indices = append(indices, 0, uint32(i)+1, next)
	}
	for i := 0; i < segments; i++ {
		next := uint32((i+1)%segments) + 1
		indices = append(indices, centerIdx, next, uint32(i)+1)
	}

	return NewMeshBuilder(vertices, common.PrimitiveTriangle).WithIndices(indices)
}

func (f *shapeFactory) Plane(width, depth float32, color common.Color) *MeshBuilder {
	hw := width / 2.0
	hd := depth / 2.0

	vertices := []common.Vertex{
		common.NewVertex(-hw, 0, -hd, color),
		common.NewVertex(hw, 0, -hd, color),
		common.NewVertex(hw, 0, hd, color),
		common.NewVertex(-hw, 0, hd, color),
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}

	return NewMeshBuilder(vertices, common.PrimitiveTriangle).WithIndices(indices)
}

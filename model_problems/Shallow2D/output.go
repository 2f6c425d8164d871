package Shallow2D

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/gocentral/Central2D"
)

/*
Binary solution output

The mesh section triangulates the logical cell centers so downstream
visualization tools consume the same unstructured TriMesh layout used for
finite element output: dimension count, coordinate pairs, then triangle
vertex indices. Solution frames follow as float32 height fields over the
canonical cells, one frame per Run segment. All values are little endian.
*/

type meshWriter struct {
	file *os.File
}

func newMeshWriter[L Central2D.Limiter](fileName string,
	s *Central2D.Solver[Shallow, L]) (w *meshWriter) {
	var (
		err  error
		file *os.File
		pts  = make([][2]float64, s.Nx*s.Ny)
	)
	file, err = os.Create(fileName)
	if err != nil {
		panic(err)
	}
	for j := 0; j < s.Ny; j++ {
		for i := 0; i < s.Nx; i++ {
			pts[i+j*s.Nx] = [2]float64{
				(float64(i) + 0.5) * s.Dx,
				(float64(j) + 0.5) * s.Dy,
			}
		}
	}
	tris := triangle.Delaunay(pts)

	xy := make([]float32, 2*len(pts))
	for i, pt := range pts {
		xy[2*i], xy[2*i+1] = float32(pt[0]), float32(pt[1])
	}
	triVerts := make([]int32, 0, 3*len(tris))
	for _, tri := range tris {
		triVerts = append(triVerts, tri[0], tri[1], tri[2])
	}
	fmt.Printf("Number of Coordinate Pairs: %d\n", len(pts))
	fmt.Printf("Number of Triangle Elements: %d\n", len(tris))

	nDimensions := int64(2)
	binary.Write(file, binary.LittleEndian, nDimensions)
	binary.Write(file, binary.LittleEndian, int64(len(pts)))
	binary.Write(file, binary.LittleEndian, xy)
	binary.Write(file, binary.LittleEndian, int64(len(triVerts)))
	binary.Write(file, binary.LittleEndian, triVerts)
	w = &meshWriter{file: file}
	return
}

func (w *meshWriter) WriteFrame(field []float32) {
	binary.Write(w.file, binary.LittleEndian, int64(len(field)))
	binary.Write(w.file, binary.LittleEndian, field)
}

func (w *meshWriter) Close() {
	if err := w.file.Close(); err != nil {
		panic(err)
	}
}

// heightField flattens the canonical height values for a solution frame
func (sim *Simulation[L]) heightField() (field []float32) {
	var (
		s = sim.Solver
	)
	field = make([]float32, s.Nx*s.Ny)
	for j := 0; j < s.Ny; j++ {
		for i := 0; i < s.Nx; i++ {
			field[i+j*s.Nx] = float32(s.At(0, i, j))
		}
	}
	return
}

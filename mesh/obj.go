package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// LoadObj reads a wavefront OBJ model into a mesh, assigning the given
// material handle to every triangle. The path may be a local file or an
// http/https URL. Only vertex and face records are interpreted; faces with
// more than three indices are fan triangulated around their first vertex.
func LoadObj(path string, material uint32) (Mesh, error) {
	res, err := OpenResource(path)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	return ReadObj(res, res.Path(), material)
}

// ReadObj parses wavefront OBJ records from a reader. The name is only used
// in error messages.
func ReadObj(r io.Reader, name string, material uint32) (Mesh, error) {
	var mesh Mesh
	var vertices []types.Vec3

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: malformed vertex", name, lineNum)
			}
			var coords [3]float32
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: malformed vertex: %v", name, lineNum, err)
				}
				coords[i] = float32(val)
			}
			vertices = append(vertices, types.XYZ(coords[0], coords[1], coords[2]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: face needs at least 3 indices", name, lineNum)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				// Indices may carry texture and normal refs after a slash;
				// only the vertex index is used.
				if cut := strings.IndexByte(field, '/'); cut != -1 {
					field = field[:cut]
				}
				i, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: malformed face index: %v", name, lineNum, err)
				}
				if i < 1 || i > len(vertices) {
					return nil, fmt.Errorf("mesh: %s:%d: face index %d out of range", name, lineNum, i)
				}
				idx = append(idx, i-1)
			}
			for k := 2; k < len(idx); k++ {
				mesh = append(mesh, &scene.Triangle{
					A:        vertices[idx[0]],
					B:        vertices[idx[k-1]],
					C:        vertices[idx[k]],
					Material: material,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: error reading %s: %v", name, err)
	}
	return mesh, nil
}

package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/trophy/pkg/math3d"
)

// objFace holds the raw "v/vt/vn" (or "v//vn") index triples for one
// triangle, still 1-indexed as they appear in the file.
type objFace struct {
	tokens [3]string
}

// LoadOBJ parses a Wavefront OBJ file containing triangles only: "v"
// (position, 3 floats), "vt" (texture coordinate, at least 2 floats), "vn"
// (normal, optional) and "f" (face, three "v/vt/vn" or "v//vn" tokens,
// 1-indexed). Any other line (materials, groups, smoothing) is ignored,
// since meshes never reference materials in this renderer.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	mesh, err := parseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse obj %q: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

func parseOBJ(r io.Reader) (*Mesh, error) {
	var positions []math3d.Vec3
	var texcoords []math3d.Vec2
	var normals []math3d.Vec3
	var faces []objFace

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "v %g %g %g", &x, &y, &z); err != nil {
				return nil, fmt.Errorf("bad vertex %q: %w", line, err)
			}
			positions = append(positions, math3d.V3(x, y, z))
		case "vt":
			var u, v float64
			if _, err := fmt.Sscanf(line, "vt %g %g", &u, &v); err != nil {
				return nil, fmt.Errorf("bad texture coordinate %q: %w", line, err)
			}
			texcoords = append(texcoords, math3d.V2(u, v))
		case "vn":
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "vn %g %g %g", &x, &y, &z); err != nil {
				return nil, fmt.Errorf("bad normal %q: %w", line, err)
			}
			normals = append(normals, math3d.V3(x, y, z))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("face needs 3 tokens, got %q", line)
			}
			faces = append(faces, objFace{tokens: [3]string{fields[1], fields[2], fields[3]}})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(positions) == 0 || len(faces) == 0 {
		return nil, fmt.Errorf("no vertex/face data found")
	}

	mesh := NewMesh("")
	// vmap dedupes identical (pos,uv,normal) index triples into one Mesh
	// vertex, matching the usual OBJ-to-indexed-mesh expansion.
	vmap := make(map[string]int)

	resolveVertex := func(tok string) (int, error) {
		if idx, ok := vmap[tok]; ok {
			return idx, nil
		}
		vi, ti, ni, err := parseFaceIndex(tok, len(positions), len(texcoords), len(normals))
		if err != nil {
			return 0, err
		}
		mv := MeshVertex{Position: positions[vi]}
		if ti >= 0 {
			mv.UV = texcoords[ti]
		}
		if ni >= 0 {
			mv.Normal = normals[ni]
		}
		idx := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, mv)
		vmap[tok] = idx
		return idx, nil
	}

	for _, face := range faces {
		var tri Face
		for i, tok := range face.tokens {
			idx, err := resolveVertex(tok)
			if err != nil {
				return nil, err
			}
			tri.V[i] = idx
		}
		mesh.Faces = append(mesh.Faces, tri)
	}

	if normals == nil {
		mesh.CalculateNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// parseFaceIndex decodes one "v", "v/vt", "v/vt/vn" or "v//vn" token into
// zero-based indices; missing texture/normal indices come back as -1.
func parseFaceIndex(tok string, nv, nt, nn int) (v, t, n int, err error) {
	v, t, n = -1, -1, -1
	parts := strings.Split(tok, "/")
	v, err = parseOBJIndex(parts[0], nv)
	if err != nil {
		return -1, -1, -1, fmt.Errorf("bad face token %q: %w", tok, err)
	}
	if len(parts) >= 2 && parts[1] != "" {
		t, err = parseOBJIndex(parts[1], nt)
		if err != nil {
			return -1, -1, -1, fmt.Errorf("bad face token %q: %w", tok, err)
		}
	}
	if len(parts) >= 3 && parts[2] != "" {
		n, err = parseOBJIndex(parts[2], nn)
		if err != nil {
			return -1, -1, -1, fmt.Errorf("bad face token %q: %w", tok, err)
		}
	}
	return v, t, n, nil
}

// parseOBJIndex converts a 1-indexed (or negative, relative-to-end) OBJ
// index into a zero-based index into a slice of length n.
func parseOBJIndex(s string, n int) (int, error) {
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err != nil {
		return 0, err
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range [1,%d]", s, n)
	}
	return i, nil
}

// Command textmesh extrudes a text string into a 3D mesh and writes it
// as binary STL or Wavefront OBJ, chosen by the output extension.
//
// Usage:
//
//	textmesh -font arial.ttf -text "Hello" -o hello.stl
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/textmesh"
)

func main() {
	fontPath := flag.String("font", "", "path to TTF/OTF font file")
	text := flag.String("text", "", "text to mesh")
	outPath := flag.String("o", "", "output mesh path (.stl or .obj)")
	height := flag.Int("height", 48, "font height in pixels")
	x := flag.Float64("x", 0, "pen start x")
	y := flag.Float64("y", 0, "pen start y")
	extrude := flag.Float64("extrude", 16, "extrusion depth along z")
	steps := flag.Int("steps", textmesh.DefaultBezierSteps, "flattening steps per curve segment")
	kerning := flag.Bool("kerning", true, "enable kerning")
	parser := flag.String("parser", "ximage", "font parser backend (ximage or gotext)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if *fontPath == "" || *text == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		textmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m := textmesh.NewMesher(*fontPath, *height,
		textmesh.WithBezierSteps(*steps),
		textmesh.WithKerning(*kerning),
		textmesh.WithParser(*parser))
	if !m.Ready() {
		log.Fatalf("failed to load font %s", *fontPath)
	}

	mesh := m.Generate(*text, *x, *y, *extrude)
	if mesh.IsEmpty() {
		log.Fatalf("no geometry produced for %q", *text)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	switch ext := strings.ToLower(filepath.Ext(*outPath)); ext {
	case ".stl":
		err = writeSTL(w, mesh)
	case ".obj":
		err = writeOBJ(w, mesh)
	default:
		log.Fatalf("unsupported output format %q (want .stl or .obj)", ext)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	fmt.Printf("wrote %s: %d vertices, %d triangles\n",
		*outPath, mesh.NumVertices(), mesh.NumTriangles())
}

// writeSTL writes the mesh as binary STL: an 80-byte header, a triangle
// count, then per triangle a normal, three vertices and an attribute
// word, all little-endian float32.
func writeSTL(w io.Writer, m *textmesh.TriangleMesh) error {
	var header [80]byte
	copy(header[:], "textmesh")
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}

	for _, t := range m.Triangles {
		a := m.Vertices[t[0]]
		b := m.Vertices[t[1]]
		c := m.Vertices[t[2]]

		var rec [12]float32
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Length(); l > 0 {
			n = n.Mul(1 / l)
		}
		rec[0], rec[1], rec[2] = float32(n.X), float32(n.Y), float32(n.Z)
		rec[3], rec[4], rec[5] = float32(a.X), float32(a.Y), float32(a.Z)
		rec[6], rec[7], rec[8] = float32(b.X), float32(b.Y), float32(b.Z)
		rec[9], rec[10], rec[11] = float32(c.X), float32(c.Y), float32(c.Z)

		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

// writeOBJ writes the mesh as Wavefront OBJ (1-based face indices).
func writeOBJ(w io.Writer, m *textmesh.TriangleMesh) error {
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, t := range m.Triangles {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1); err != nil {
			return err
		}
	}
	return nil
}

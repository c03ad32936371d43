package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goscad/pkg/geometry"
)

// Format selects an STL serialization
type Format string

const (
	// FormatBinary is the compact layout: an 80-byte header, a
	// uint32 triangle count, then one 50-byte little-endian record
	// per triangle (normal, three vertices, attribute count).
	FormatBinary Format = "binary"

	// FormatASCII is the verbose solid/facet/vertex text layout
	FormatASCII Format = "ascii"
)

// WriteBinary writes the model in binary STL format. Every triangle of
// the model is written, including degenerate ones (their normal is the
// zero vector), so the record count always equals the triangle count.
func WriteBinary(w io.Writer, model *Model) error {
	var header [80]byte
	copy(header[:], "goscad "+model.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16
		}{
			Normal: toFloat32(triangle.Normal),
			V1:     toFloat32(triangle.V1),
			V2:     toFloat32(triangle.V2),
			V3:     toFloat32(triangle.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	name := model.Name
	if name == "" {
		name = "goscad"
	}

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, triangle := range model.Triangles {
		n := triangle.Normal
		fmt.Fprintf(bw, "  facet normal %s %s %s\n", formatValue(n.X), formatValue(n.Y), formatValue(n.Z))
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			fmt.Fprintf(bw, "      vertex %s %s %s\n", formatValue(v.X), formatValue(v.Y), formatValue(v.Z))
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// Export writes the model to a file in the requested format
func Export(filename string, model *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatBinary:
		err = WriteBinary(file, model)
	case FormatASCII:
		err = WriteASCII(file, model)
	default:
		err = fmt.Errorf("unknown STL format %q", format)
	}
	if err != nil {
		return err
	}

	return file.Close()
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func formatValue(f float64) string {
	return fmt.Sprintf("%.6e", f)
}

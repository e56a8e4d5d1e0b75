package wmt

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Encode serializes a document to canonical WMT text: points first,
// then walls in ascending index order, then sectors, then the camera.
// Parsing the output yields a document equal to the input.
func Encode(doc *Document) []byte {
	var buf bytes.Buffer

	buf.WriteString("# points\n")
	for _, p := range doc.Points {
		fmt.Fprintf(&buf, "p %s %s\n", formatFloat(p.X), formatFloat(p.Y))
	}

	walls := make([]Wall, 0, len(doc.Walls))
	for w := range doc.Walls {
		walls = append(walls, w)
	}
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].A != walls[j].A {
			return walls[i].A < walls[j].A
		}
		return walls[i].B < walls[j].B
	})

	if len(walls) > 0 {
		buf.WriteString("\n# walls\n")
		for _, w := range walls {
			fmt.Fprintf(&buf, "w %d %d\n", w.A, w.B)
		}
	}

	if len(doc.Sectors) > 0 {
		buf.WriteString("\n# sectors\n")
		for _, s := range doc.Sectors {
			fmt.Fprintf(&buf, "s %s %s", formatFloat(s.Floor), formatFloat(s.Ceiling))
			for _, idx := range s.Points {
				fmt.Fprintf(&buf, " %d", idx)
			}
			buf.WriteByte('\n')
		}
	}

	if doc.HasCamera {
		buf.WriteString("\n# camera\n")
		fmt.Fprintf(&buf, "c %s %s %s %s\n",
			formatFloat(doc.Camera.X), formatFloat(doc.Camera.Y),
			formatFloat(doc.Camera.Height), formatFloat(doc.Camera.Rotation))
	}

	return buf.Bytes()
}

// WriteFile writes the canonical encoding of a document to disk.
func WriteFile(path string, doc *Document) error {
	if err := os.WriteFile(path, Encode(doc), 0644); err != nil {
		return fmt.Errorf("writing WMT file: %w", err)
	}
	return nil
}

// formatFloat prints the shortest decimal that round-trips a float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

package magicgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/0x5844/slider"
)

// WriteGo writes a gofmt'ed Go source file declaring bishopMagics and
// rookMagics in package pkg. With pkg "slider" the output replaces the
// slider package's magics.go.
func WriteGo(w io.Writer, pkg string, bishops, rooks [slider.NumOfSquaresInBoard]uint64) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by magicgen. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	buf.WriteString("// Magic multipliers per square, A1..H8.\n")
	writeArray(&buf, "bishopMagics", bishops)
	buf.WriteString("\n")
	writeArray(&buf, "rookMagics", rooks)
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteFile writes the output of WriteGo to path. A failed flush on close
// is reported.
func WriteFile(path, pkg string, bishops, rooks [slider.NumOfSquaresInBoard]uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteGo(f, pkg, bishops, rooks)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeArray(buf *bytes.Buffer, name string, magics [slider.NumOfSquaresInBoard]uint64) {
	fmt.Fprintf(buf, "var %s = [NumOfSquaresInBoard]uint64{\n", name)
	for i, m := range magics {
		if i%4 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "0x%016x,", m)
		if i%4 == 3 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")
}

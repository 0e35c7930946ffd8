// Package testpdf builds small but structurally complete PDF files for tests:
// real xref table, one content stream per page, explicit MediaBox per page.
package testpdf

import (
	"bytes"
	"fmt"
)

// PageSize is the MediaBox of one generated page, in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Single returns a one-page PDF with the given page size.
func Single(width, height float64) []byte {
	return Build([]PageSize{{Width: width, Height: height}})
}

// Build returns a PDF with one page per entry of sizes.
func Build(sizes []PageSize) []byte {
	var buf bytes.Buffer
	offsets := []int{0} // object 0 is the free head

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	n := len(sizes)
	kids := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 3+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids, n))

	for i, size := range sizes {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		writeObj(fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			pageNum, size.Width, size.Height, contentNum))
		content := fmt.Sprintf("0 0 m %g %g l S\n", size.Width, size.Height)
		writeObj(fmt.Sprintf(
			"%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			contentNum, len(content), content))
	}

	xrefOffset := buf.Len()
	size := 3 + 2*n
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	return buf.Bytes()
}

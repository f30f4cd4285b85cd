package pnmdump

import (
	"bufio"
	"fmt"
	"io"
)

// HexDump writes a hex and ASCII listing of r to w, eight bytes per line.
// Each line starts with the 7-digit hex offset of its first byte; each
// byte is shown as two hex digits followed by its printable ASCII form, or
// a dot for anything outside [32, 126]. A final line carries the total
// byte count.
func HexDump(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	var chunk [8]byte
	total := 0

	for {
		n, err := io.ReadFull(r, chunk[:])
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if n > 0 {
			fmt.Fprintf(bw, "%07x", total)
			for _, b := range chunk[:n] {
				if b >= 32 && b <= 126 {
					fmt.Fprintf(bw, "  %02X %c", b, b)
				} else {
					fmt.Fprintf(bw, "  %02X .", b)
				}
			}
			total += n
			bw.WriteByte('\n')
		}
		if n < len(chunk) {
			fmt.Fprintf(bw, "%07x\n", total)
			break
		}
	}
	return bw.Flush()
}

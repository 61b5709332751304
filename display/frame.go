package display

import (
	"bufio"
	"fmt"
	"io"
)

// EmitFrame writes one display frame: a STEP header giving the grid
// dimensions and agent count, followed (when showCounts is true) by
// one line per node holding its current count in node-id order, then
// END.
func EmitFrame(w io.Writer, width, height, agentCount int, counts []int, showCounts bool) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "STEP %d %d %d\n", width, height, agentCount); err != nil {
		return err
	}
	if showCounts {
		for _, c := range counts {
			if _, err := fmt.Fprintf(bw, "%d\n", c); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw, "END"); err != nil {
		return err
	}

	return bw.Flush()
}

// EmitDone writes the terminal DONE line the driver emits once every
// step has run.
func EmitDone(w io.Writer) error {
	_, err := fmt.Fprintln(w, "DONE")

	return err
}

package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridzone/ratsim/gridgraph"
	"github.com/gridzone/ratsim/partition"
)

// reader wraps a bufio.Scanner and skips comment lines transparently.
type reader struct {
	sc   *bufio.Scanner
	line int
}

func newReader(r io.Reader) *reader {
	return &reader{sc: bufio.NewScanner(r)}
}

// next returns the next non-comment line, or ok=false at EOF.
func (rd *reader) next() (string, bool) {
	for rd.sc.Scan() {
		rd.line++
		text := rd.sc.Text()
		if isComment(text) {
			continue
		}

		return text, true
	}

	return "", false
}

func isComment(s string) bool {
	for _, c := range s {
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}

		return c == '#'
	}

	return false
}

// Parse reads the grid-graph file format described in graphfile's
// package doc and returns the resulting graph and region rectangles.
// Parse fails fast on the first malformed or out-of-range line, as
// required by spec §7: input errors are reported before any
// simulation work begins.
func Parse(r io.Reader) (*Parsed, error) {
	rd := newReader(r)

	header, ok := rd.next()
	if !ok {
		return nil, fmt.Errorf("%w: empty input", ErrUnexpectedEOF)
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: line %d", ErrMalformedHeader, rd.line)
	}
	width, err1 := strconv.Atoi(fields[0])
	height, err2 := strconv.Atoi(fields[1])
	nedge, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: line %d", ErrMalformedHeader, rd.line)
	}
	nregion := 0
	if len(fields) >= 4 {
		nregion, err1 = strconv.Atoi(fields[3])
		if err1 != nil {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedHeader, rd.line)
		}
	}

	builder, err := gridgraph.NewBuilder(width, height, nedge)
	if err != nil {
		return nil, err
	}
	nnode := width * height

	for i := 0; i < nnode; i++ {
		line, ok := rd.next()
		if !ok {
			return nil, fmt.Errorf("%w: expecting node %d", ErrUnexpectedEOF, i)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != "n" {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedNode, rd.line)
		}
		if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedNode, rd.line)
		}
		// ILF is read and discarded: ideal load factors are derived
		// dynamically from live counts (spec §4.1), never read from disk.
	}

	for i := 0; i < nedge; i++ {
		line, ok := rd.next()
		if !ok {
			return nil, fmt.Errorf("%w: expecting edge %d", ErrUnexpectedEOF, i)
		}
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "e" {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedEdge, rd.line)
		}
		head, errH := strconv.Atoi(fields[1])
		tail, errT := strconv.Atoi(fields[2])
		if errH != nil || errT != nil {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedEdge, rd.line)
		}
		if err := builder.AddEdge(head, tail); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedEdge, rd.line, err)
		}
	}

	g, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var regions []partition.Region
	if nregion > 0 {
		regions = make([]partition.Region, nregion)
		for i := 0; i < nregion; i++ {
			line, ok := rd.next()
			if !ok {
				return nil, fmt.Errorf("%w: expecting region %d", ErrUnexpectedEOF, i)
			}
			fields := strings.Fields(line)
			if len(fields) != 5 || fields[0] != "r" {
				return nil, fmt.Errorf("%w: line %d", ErrMalformedRegion, rd.line)
			}
			x, e1 := strconv.Atoi(fields[1])
			y, e2 := strconv.Atoi(fields[2])
			w, e3 := strconv.Atoi(fields[3])
			h, e4 := strconv.Atoi(fields[4])
			if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
				return nil, fmt.Errorf("%w: line %d", ErrMalformedRegion, rd.line)
			}
			if x < 0 || y < 0 || w < 0 || h < 0 || x+w > width || y+h > height {
				return nil, fmt.Errorf("%w: line %d: rectangle outside the grid", ErrMalformedRegion, rd.line)
			}

			edgeCount := 0
			for dx := x; dx < x+w; dx++ {
				for dy := y; dy < y+h; dy++ {
					nid := g.NodeID(dx, dy)
					edgeCount += g.AdjStart[nid+1] - g.AdjStart[nid]
				}
			}
			regions[i] = partition.Region{
				ID:        i,
				X:         x,
				Y:         y,
				W:         w,
				H:         h,
				NodeCount: w * h,
				EdgeCount: edgeCount,
			}
		}
	}

	return &Parsed{Graph: g, Regions: regions}, nil
}

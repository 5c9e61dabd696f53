package glyph

import (
	"fmt"

	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
)

// PathCommand distinguishes the four outline node shapes, selected by the
// low nibble of each node's leading command byte.
type PathCommand uint8

const (
	Move   PathCommand = 0
	Line   PathCommand = 1
	Curve  PathCommand = 3
	QCurve PathCommand = 4
)

// InvalidPathCommandError reports a command nibble outside
// {Move, Line, Curve, QCurve}.
type InvalidPathCommandError struct {
	Nibble uint8
}

func (e *InvalidPathCommandError) Error() string {
	return fmt.Sprintf("vfb/glyph: invalid path command nibble 0x%x", e.Nibble)
}

// Point is one absolute (x, y) position, reconstructed from a delta
// against the outline's running accumulator.
type Point struct {
	X, Y int32
}

// Node is one outline node. Points, C1Points and C2Points each carry one
// entry per layer (see Outline.Layers); Move and Line populate only
// Points, QCurve additionally populates C1Points, and Curve populates
// both C1Points and C2Points.
type Node struct {
	Command  PathCommand
	Flags    uint8
	Points   []Point
	C1Points []Point
	C2Points []Point
}

// Outline is the decoded payload of glyph sub-key 8: a delta-coded node
// stream, one end-point (and, for curves, control points) per layer.
//
// The "layers" count is read independently of the document's master
// count (the original's own prose is unsure whether the two coincide; see
// its comment "I suspect they're
// actually what other formats call 'layers'"), so it is kept as its own
// field here rather than unified with MasterCount.
type Outline struct {
	Layers int32
	Nodes  []Node
}

func readOutline(c *cursor.Cursor) (*Outline, error) {
	layers, err := charstring.ReadValue(c)
	if err != nil {
		return nil, err
	}

	// One encoded "node values" word is skipped here; its purpose is not
	// recoverable from the available sources (see original's outline
	// reader, which reads and discards the same field).
	if _, err := charstring.ReadValue(c); err != nil {
		return nil, err
	}

	nodeCount, err := charstring.ReadValue(c)
	if err != nil {
		return nil, err
	}

	o := &Outline{Layers: layers, Nodes: make([]Node, nodeCount)}

	// curX/curY persist across every node of the outline, and across every
	// layer within a node: they are never reset. This is the behaviour
	// the original format's own design notes flag as counter-intuitive but
	// load-bearing.
	var curX, curY int32

	for i := range o.Nodes {
		cmdByte, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		nibble := cmdByte & 0x0F
		flags := cmdByte >> 4

		var cmd PathCommand
		switch nibble {
		case 0, 1, 3, 4:
			cmd = PathCommand(nibble)
		default:
			return nil, &InvalidPathCommandError{Nibble: nibble}
		}

		points, err := readDeltaLayerPoints(c, int(layers), &curX, &curY)
		if err != nil {
			return nil, err
		}

		node := Node{Command: cmd, Flags: flags, Points: points}

		if cmd == Curve {
			c1, err := readDeltaLayerPoints(c, int(layers), &curX, &curY)
			if err != nil {
				return nil, err
			}
			c2, err := readDeltaLayerPoints(c, int(layers), &curX, &curY)
			if err != nil {
				return nil, err
			}
			node.C1Points = c1
			node.C2Points = c2
		} else if cmd == QCurve {
			c1, err := readDeltaLayerPoints(c, int(layers), &curX, &curY)
			if err != nil {
				return nil, err
			}
			node.C1Points = c1
		}

		o.Nodes[i] = node
	}

	return o, nil
}

func readDeltaLayerPoints(c *cursor.Cursor, layers int, curX, curY *int32) ([]Point, error) {
	points := make([]Point, layers)
	for i := range points {
		dx, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		dy, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		*curX += dx
		*curY += dy
		points[i] = Point{X: *curX, Y: *curY}
	}
	return points, nil
}

package pocketcube

import "context"

// node is one explored state. Nodes live in the frontier's arena and point
// at their parent by index, so paths are rebuilt without per-node copies.
type node struct {
	cube   Cube
	key    uint64
	parent int32
	move   Move
	depth  uint8
}

// frontier is one side of the bidirectional search. The arena doubles as the
// BFS queue: nodes[lo:hi] is the most recent level.
type frontier struct {
	name    string
	nodes   []node
	visited map[uint64]int32
	lo, hi  int
}

func newFrontier(name string, start Cube) *frontier {
	root := node{cube: start, key: start.Key(), parent: -1}
	return &frontier{
		name:    name,
		nodes:   []node{root},
		visited: map[uint64]int32{root.key: 0},
		lo:      0,
		hi:      1,
	}
}

// depth returns the depth of the most recent level.
func (f *frontier) depth() int {
	return int(f.nodes[f.lo].depth)
}

// size returns the number of distinct states seen.
func (f *frontier) size() int {
	return len(f.nodes)
}

// width returns the number of states on the most recent level.
func (f *frontier) width() int {
	return f.hi - f.lo
}

// advance expands every node of the current level by all quarter turns,
// except the one undoing the node's own move, and makes the unseen children
// the new level.
func (f *frontier) advance(ctx context.Context) error {
	lo, hi := f.lo, f.hi
	for i := lo; i < hi; i++ {
		if i&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		n := f.nodes[i]
		for _, m := range AllMoves {
			if n.parent >= 0 && m == n.move.Opposite() {
				continue
			}
			child := n.cube
			child.MakeMove(m)
			k := child.Key()
			if _, seen := f.visited[k]; seen {
				continue
			}
			f.visited[k] = int32(len(f.nodes))
			f.nodes = append(f.nodes, node{
				cube:   child,
				key:    k,
				parent: int32(i),
				move:   m,
				depth:  n.depth + 1,
			})
		}
	}
	f.lo, f.hi = hi, len(f.nodes)
	return nil
}

// exhausted reports whether the last advance found no new states.
func (f *frontier) exhausted() bool {
	return f.lo == f.hi
}

// path returns the moves leading from the root to node idx.
func (f *frontier) path(idx int32) []Move {
	depth := int(f.nodes[idx].depth)
	moves := make([]Move, depth)
	for i := depth - 1; i >= 0; i-- {
		n := f.nodes[idx]
		moves[i] = n.move
		idx = n.parent
	}
	return moves
}

// meeting is a state reached by both frontiers.
type meeting struct {
	scrambled int32
	solved    int32
}

// intersect lists states on either frontier's newest level that the other
// frontier has seen. Both frontiers are only read.
func intersect(a, b *frontier) []meeting {
	var out []meeting
	for i := a.lo; i < a.hi; i++ {
		if j, ok := b.visited[a.nodes[i].key]; ok {
			out = append(out, meeting{scrambled: int32(i), solved: j})
		}
	}
	for j := b.lo; j < b.hi; j++ {
		i, ok := a.visited[b.nodes[j].key]
		if !ok || int(i) >= a.lo {
			// New on both sides; already collected above.
			continue
		}
		out = append(out, meeting{scrambled: i, solved: int32(j)})
	}
	return out
}

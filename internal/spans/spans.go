// Package spans keeps analyzed nodes ordered by their source spans and
// answers "innermost node at position" queries for tooling.
package spans

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/exceptful/eir"
)

// NewIndex is [Index] constructor.
func NewIndex() *Index {
	return &Index{tree: rbtree.New[*nodeSpan]()}
}

// Index holds node spans of a single analysis pass. It serves as
// a positional lookup structure built once per pass.
type Index struct {
	tree *rbtree.Tree[*nodeSpan]
}

// At exits the most specific (innermost) node covering pos. Nodes
// registered under an identical span shade each other, which of them
// comes out is not specified.
func (x *Index) At(pos token.Pos) eir.Node {
	probe := &nodeSpan{start: pos, end: pos}
	res := x.tree.Search(probe)
	if res == nil {
		return nil
	}

	return descendSearch(res, pos)
}

// Add registers a node with its [start,end] token span.
// The RB-tree orders only disjoint spans; any overlap is reported back
// via InsertReturn, and we resolve it into a strict containment
// hierarchy. All ordering/balancing is handled by the underlying
// rbtree.
func (x *Index) Add(node eir.Node, s eir.Span) {
	span := &nodeSpan{start: s.Start, end: s.End, node: node}
	attachInto(x.tree, span)
}

package expr

import "sort"

// Substitute replaces every variable named in repl with its replacement tree.
// Subtrees that contain no replaced variable are shared with e.
func Substitute(e Expr, repl map[string]Expr) Expr {
	switch n := e.(type) {
	case *VarNode:
		if r, ok := repl[n.Name]; ok {
			return r
		}
		return n
	case *UnaryNode:
		child := Substitute(n.Child, repl)
		if child == n.Child {
			return n
		}
		return &UnaryNode{Op: n.Op, Child: child}
	case *BinaryNode:
		left := Substitute(n.Left, repl)
		right := Substitute(n.Right, repl)
		if left == n.Left && right == n.Right {
			return n
		}
		return &BinaryNode{Op: n.Op, Left: left, Right: right}
	default:
		return e
	}
}

// FreeVars returns the sorted names of all variables in e.
func FreeVars(e Expr) []string {
	seen := map[string]struct{}{}
	collectVars(e, seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ContainsVar reports whether the variable name occurs in e.
func ContainsVar(e Expr, name string) bool {
	switch n := e.(type) {
	case *VarNode:
		return n.Name == name
	case *UnaryNode:
		return ContainsVar(n.Child, name)
	case *BinaryNode:
		return ContainsVar(n.Left, name) || ContainsVar(n.Right, name)
	default:
		return false
	}
}

func collectVars(e Expr, out map[string]struct{}) {
	switch n := e.(type) {
	case *VarNode:
		out[n.Name] = struct{}{}
	case *UnaryNode:
		collectVars(n.Child, out)
	case *BinaryNode:
		collectVars(n.Left, out)
		collectVars(n.Right, out)
	}
}

package expr

func (v *VarNode) NodeCount() int   { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (n *BinaryNode) NodeCount() int {
	return 1 + n.Left.NodeCount() + n.Right.NodeCount()
}

func (v *VarNode) Depth() int   { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (n *BinaryNode) Depth() int {
	ld := n.Left.Depth()
	rd := n.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

package ir

func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		return node.Float64 != 0.0
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}

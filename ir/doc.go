// Package ir holds the intermediate value model shared by every parser
// and serializer.
//
// A [Node] is a tagged union over six types:
//
//	NullType    null
//	BoolType    Bool
//	NumberType  Float64 (numbers are always float64)
//	StringType  String
//	ArrayType   Values
//	ObjectType  Fields (keys) and Values, in insertion order
//
// Object keys are unique; [Node.Set] replaces an existing entry in place so
// that re-serialization is deterministic.
//
// XML input keeps its root element name as the single top level key and
// may carry the reserved keys [AttributesKey] and [TextKey] on element
// objects.
//
// A tree is built fresh for each conversion and is not shared afterwards.
package ir

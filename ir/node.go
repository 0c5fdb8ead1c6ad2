package ir

// Node is the value every parser produces and every serializer consumes.
//
// Objects keep their keys in Fields (string nodes) and the matching
// values in Values, in insertion order. Arrays use Values only.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 float64
}

const (
	// AttributesKey holds the attributes of an XML element.
	AttributesKey = "@attributes"
	// TextKey holds the text content of an XML element.
	TextKey = "#text"
)

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: f}
}

func FromInt(i int) *Node {
	return FromFloat(float64(i))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object from kvs. A repeated key keeps its first
// position and takes the last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Index returns the position of field in an object or -1.
func (y *Node) Index(field string) int {
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	if i := y.Index(field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Set assigns v to key, replacing an existing entry in place.
func (y *Node) Set(key string, v *Node) {
	if i := y.Index(key); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Last returns the most recently added entry of an object, or nil.
func (y *Node) Last() (string, *Node) {
	n := len(y.Fields)
	if n == 0 {
		return "", nil
	}
	return y.Fields[n-1].String, y.Values[n-1]
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Float64: y.Float64,
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

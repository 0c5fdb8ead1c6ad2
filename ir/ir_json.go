package ir

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes the node as plain compact JSON with object keys in
// insertion order. Non-finite numbers become null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := appendJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberType:
		if !y.Finite() {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(y.Float64))
	case StringType:
		return appendJSONString(buf, y.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSONString(buf, f.String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return ErrUnsupported
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

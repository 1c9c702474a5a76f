// Package theme builds editor theme documents from declarative templates
// and a color table.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Member is a single key/value pair of an Object
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that remembers the order its keys were set in.
// Values are string, int64, float64, bool or *Object.
type Object struct {
	members []Member
	index   map[string]int
}

// Document is the root object of a generated theme
type Document = Object

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and gets the new value.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Path follows keys through nested objects. Keys may contain dots, which
// is why the path is not a dotted string.
func (o *Object) Path(keys ...string) (any, bool) {
	var cur any = o
	for _, key := range keys {
		obj, ok := cur.(*Object)
		if !ok {
			return nil, false
		}
		if cur, ok = obj.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Members returns the key/value pairs in insertion order
func (o *Object) Members() []Member { return o.members }

// Len returns the number of keys
func (o *Object) Len() int { return len(o.members) }

// MarshalJSON writes the object with keys in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeScalar(buf, m.Key); err != nil {
			return err
		}
		buf.WriteByte(':')

		switch v := m.Value.(type) {
		case *Object:
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		case string, bool, int64, float64:
			if err := writeScalar(buf, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value type %T", m.Key, m.Value)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Encode returns the canonical text of a document: keys in construction
// order, two space indentation and a trailing newline.
func Encode(doc *Document) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent theme: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

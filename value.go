// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"
	"strconv"
	"strings"
)

// A Value is a node of a parse tree. The concrete type is one of *Object,
// String, Integer, Bool, or Null.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// An Object is a collection of key-value members, in the order their keys
// were received.
type Object struct {
	Members []*Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	if len(o.Members) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Quote(m.Key))
		sb.WriteByte(':')
		sb.WriteString(valueJSON(m.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Members)) }

// A String is a string value, with escapes already decoded.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return Quote(string(s)) }

// An Integer is an integer value.
type Integer int64

// JSON satisfies the Value interface.
func (z Integer) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (*Object) isValue() {}
func (String) isValue()  {}
func (Integer) isValue() {}
func (Bool) isValue()    {}
func (Null) isValue()    {}

// valueJSON renders v, treating a nil value (a reserved key with no value
// yet) as null.
func valueJSON(v Value) string {
	if v == nil {
		return "null"
	}
	return v.JSON()
}

// Interface converts v into plain Go values: *Object becomes map[string]any,
// String becomes string, Integer becomes int64, Bool becomes bool, and Null
// (or nil) becomes nil.
func Interface(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case *Object:
		m := make(map[string]any, len(t.Members))
		for _, mem := range t.Members {
			m[mem.Key] = Interface(mem.Value)
		}
		return m
	case String:
		return string(t)
	case Integer:
		return int64(t)
	case Bool:
		return bool(t)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// functions.  If the path is valid, the element reached is returned. In case
// of error, the input v is returned along with the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves an object member with that name.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jstream.Value) (jstream.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(*Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			m := o.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
			if cur == nil {
				cur = Null{}
			}
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

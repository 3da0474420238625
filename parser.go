// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jstream/internal/escape"
	"github.com/creachadair/mds/stack"

	"go4.org/mem"
)

// A Parser incrementally parses a single JSON object delivered in chunks.
// Each call to Feed advances the parser over a chunk of input, and Snapshot
// reports the value parsed so far.
//
// A Parser is not safe for concurrent use; chunks must be delivered in
// stream order by a single caller.
type Parser struct {
	state  State
	root   *Object
	frames *stack.Stack[*frame] // open objects, innermost on top
	member *Member              // reserved member awaiting its value, or nil
	buf    []byte               // raw text of the current key or value
	nbs    int                  // length of the run of backslashes ending buf
	comma  bool                 // StateKeyBegin was entered by a comma

	open, closed int // counts of "{" and "}" consumed
	pos          position
}

// NewParser constructs a new Parser with no input.
func NewParser() *Parser {
	return &Parser{root: new(Object), frames: stack.New[*frame]()}
}

// MustParse parses s as a complete JSON object and returns its value.  It
// panics if s is invalid or incomplete.
func MustParse(s string) *Object {
	p := NewParser()
	if err := p.Feed(s); err != nil {
		panic(err)
	} else if !p.Complete() {
		panic(fmt.Sprintf("incomplete object: %q", s))
	}
	return p.Snapshot()
}

// Feed advances p over the next chunk of input. The chunk may end anywhere;
// Feed reports an error only if the input so far is not the prefix of a valid
// object. In that case the error has concrete type [*SyntaxError], and the
// state of p reflects the input up to but not including the offending
// character.
func (p *Parser) Feed(chunk string) error {
	_, err := consume(p, chunk)
	return err
}

// Write implements io.Writer. It is equivalent to Feed, and reports the number
// of bytes consumed before an error.
func (p *Parser) Write(data []byte) (int, error) { return consume(p, data) }

func consume[T string | []byte](p *Parser, data T) (int, error) {
	for i := 0; i < len(data); i++ {
		if err := p.step(data[i]); err != nil {
			return i, err
		}
		p.pos.advance(data[i])
	}
	return len(data), nil
}

// Stream reads chunks from r and feeds them to p until r reports io.EOF,
// calling f with a snapshot after each chunk. If f reports an error, Stream
// stops and returns that error. Reaching the end of r before the object is
// complete is not an error; use p.Complete to check.
func (p *Parser) Stream(r io.Reader, f func(*Object) error) error {
	buf := make([]byte, 4096)
	for {
		nr, err := r.Read(buf)
		if nr > 0 {
			if _, werr := p.Write(buf[:nr]); werr != nil {
				return werr
			} else if ferr := f(p.Snapshot()); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// State reports the current state of the parser automaton.
func (p *Parser) State() State { return p.state }

// Depth reports the number of objects currently open.
func (p *Parser) Depth() int { return p.frames.Len() }

// Complete reports whether the root object has been closed.
func (p *Parser) Complete() bool { return p.open > 0 && p.frames.IsEmpty() }

// Snapshot returns a copy of the value parsed so far. It does not modify the
// state of p, and later input does not affect the result.
func (p *Parser) Snapshot() *Object { return p.copyObject(p.root) }

func (p *Parser) copyObject(o *Object) *Object {
	out := &Object{Members: make([]*Member, len(o.Members))}
	for i, m := range o.Members {
		out.Members[i] = &Member{Key: m.Key, Value: p.copyValue(m)}
	}
	return out
}

func (p *Parser) copyValue(m *Member) Value {
	switch t := m.Value.(type) {
	case nil:
		if m == p.member && p.state == StateValueString {
			return String(escape.UnquotePrefix(mem.B(p.buf)))
		}
		return Null{}
	case *Object:
		return p.copyObject(t)
	case String, Integer, Bool, Null:
		return t
	default:
		panic(fmt.Sprintf("unknown value type %T", t))
	}
}

// step advances the automaton over a single input byte. Every check that can
// fail is made before any state changes.
func (p *Parser) step(ch byte) error {
	switch p.state {
	case StateIdle:
		switch {
		case ch == '{':
			p.open++
			p.frames.Push(&frame{obj: p.root})
			p.enterKeyBegin(false)
			return nil
		case ch == '}':
			return p.closeObject()
		case isSpace(ch):
			return nil
		}

	case StateKeyBegin:
		switch {
		case ch == '"':
			p.reset()
			p.state = StateKey
			return nil
		case ch == '}' && p.comma:
			return p.failf(UnexpectedToken, `unexpected "}" after ","`)
		case ch == '}':
			return p.closeObject()
		case isSpace(ch):
			return nil
		}

	case StateKey, StateValueString:
		if ch == '"' && p.nbs%2 == 0 {
			if p.state == StateKey {
				return p.closeKey()
			}
			return p.closeString()
		}
		p.accum(ch)
		return nil

	case StateColon:
		switch {
		case ch == ':':
			p.state = StateValueBegin
			return nil
		case isSpace(ch):
			return nil
		}

	case StateValueBegin:
		switch {
		case ch == '"':
			p.reset()
			p.state = StateValueString
			return nil
		case ch == '{':
			p.openObject()
			return nil
		case isBareStart(ch):
			p.reset()
			p.accum(ch)
			p.state = StateValue
			return nil
		case isSpace(ch):
			return nil
		}

	case StateValue:
		switch {
		case ch == ',':
			if err := p.commitBare(); err != nil {
				return err
			}
			p.enterKeyBegin(true)
			return nil
		case ch == '}':
			if err := p.commitBare(); err != nil {
				return err
			}
			return p.closeObject()
		case isSpace(ch):
			if err := p.commitBare(); err != nil {
				return err
			}
			p.state = StateAfterValue
			return nil
		case !isDelim(ch):
			p.accum(ch)
			return nil
		}

	case StateAfterValue:
		switch {
		case ch == '}':
			return p.closeObject()
		case isSpace(ch):
			return nil
		case p.Complete():
			return p.failf(UnexpectedToken, "unexpected %q after end of object", ch)
		case ch == ',':
			p.enterKeyBegin(true)
			return nil
		}
	}
	return p.failf(UnexpectedToken, "expected %s, got %q", expected[p.state], ch)
}

// A frame is an object still open on the parse stack.
type frame struct {
	obj  *Object
	keys map[string]struct{} // keys reserved in obj
}

func (p *Parser) enterKeyBegin(comma bool) {
	p.state = StateKeyBegin
	p.comma = comma
}

// openObject begins a nested object as the value of the reserved member.
func (p *Parser) openObject() {
	obj := new(Object)
	p.member.Value = obj
	p.member = nil
	p.open++
	p.frames.Push(&frame{obj: obj})
	p.enterKeyBegin(false)
}

// closeObject ends the innermost open object.
func (p *Parser) closeObject() error {
	if p.frames.IsEmpty() {
		return p.failf(UnbalancedCloser, `unbalanced "}" (%d open, %d closed)`, p.open, p.closed)
	}
	p.frames.Pop()
	p.closed++
	p.state = StateAfterValue
	p.comma = false
	return nil
}

// closeKey decodes the pending key and reserves it in the current object.
func (p *Parser) closeKey() error {
	dec, err := escape.Unquote(mem.B(p.buf))
	if err != nil {
		return p.failf(UnexpectedToken, "invalid key: %v", err)
	}
	key := string(dec)
	top := p.frames.Top()
	if _, ok := top.keys[key]; ok {
		return p.failf(DuplicateKey, "duplicate key %q", key)
	}
	if top.keys == nil {
		top.keys = make(map[string]struct{})
	}
	top.keys[key] = struct{}{}
	p.member = &Member{Key: key}
	top.obj.Members = append(top.obj.Members, p.member)
	p.reset()
	p.state = StateColon
	return nil
}

// closeString commits the pending string value to the reserved member.
func (p *Parser) closeString() error {
	dec, err := escape.Unquote(mem.B(p.buf))
	if err != nil {
		return p.failf(UnexpectedToken, "invalid string: %v", err)
	}
	p.member.Value = String(dec)
	p.member = nil
	p.reset()
	p.state = StateAfterValue
	return nil
}

// commitBare casts the pending bare value and commits it to the reserved
// member. The caller is responsible for the state transition.
func (p *Parser) commitBare() error {
	v, ok := castBare(p.buf)
	if !ok {
		return p.failf(InvalidLiteral, "invalid literal %q", p.buf)
	}
	p.member.Value = v
	p.member = nil
	p.reset()
	return nil
}

// castBare infers the type of an unquoted value: true, false, null, or a
// decimal integer with an optional leading minus sign.
func castBare(text []byte) (Value, bool) {
	switch s := string(text); s {
	case "true":
		return Bool(true), true
	case "false":
		return Bool(false), true
	case "null":
		return Null{}, true
	default:
		if !isInteger(text) {
			return nil, false
		}
		z, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false // out of range
		}
		return Integer(z), true
	}
}

func (p *Parser) accum(ch byte) {
	p.buf = append(p.buf, ch)
	if ch == '\\' {
		p.nbs++
	} else {
		p.nbs = 0
	}
}

func (p *Parser) reset() {
	p.buf = p.buf[:0]
	p.nbs = 0
}

func (p *Parser) failf(kind ErrorKind, msg string, args ...any) error {
	return &SyntaxError{
		Kind:     kind,
		Location: p.pos.lineCol(),
		Offset:   p.pos.off,
		Message:  fmt.Sprintf(msg, args...),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isBareStart reports whether ch may begin an unquoted value.
func isBareStart(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
		ch == '-' || ch == '+' || ch == '.'
}

// isDelim reports whether ch is punctuation that cannot occur inside an
// unquoted value.
func isDelim(ch byte) bool {
	switch ch {
	case '"', '{', '[', ']', ':':
		return true
	}
	return false
}

// isInteger reports whether text is a sequence of decimal digits with an
// optional leading minus sign.
func isInteger(text []byte) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	if len(text) == 0 {
		return false
	}
	for _, b := range text {
		if !isDigit(b) {
			return false
		}
	}
	return true
}

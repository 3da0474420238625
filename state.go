// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

// State is the state of the parser automaton.
type State byte

// Constants defining the valid State values.
const (
	StateIdle        State = iota // before the root "{"
	StateKeyBegin                 // expecting a key or "}"
	StateKey                      // inside a key string
	StateColon                    // key closed, expecting ":"
	StateValueBegin               // expecting the start of a value
	StateValueString              // inside a quoted string value
	StateValue                    // inside an unquoted value
	StateAfterValue               // value complete, expecting "," or "}"
)

var stateStr = [...]string{
	StateIdle:        "idle",
	StateKeyBegin:    "key begin",
	StateKey:         "key",
	StateColon:       "colon",
	StateValueBegin:  "value begin",
	StateValueString: "string value",
	StateValue:       "bare value",
	StateAfterValue:  "after value",
}

func (s State) String() string {
	if int(s) >= len(stateStr) {
		return "invalid state"
	}
	return stateStr[s]
}

// expected describes what the parser will accept in state s.
var expected = [...]string{
	StateIdle:        `"{"`,
	StateKeyBegin:    `string or "}"`,
	StateKey:         `'"'`,
	StateColon:       `":"`,
	StateValueBegin:  `value`,
	StateValueString: `'"'`,
	StateValue:       `"," or "}"`,
	StateAfterValue:  `"," or "}"`,
}

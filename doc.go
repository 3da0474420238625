// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jstream implements an incremental parser for JSON objects that
// arrive in arbitrary fragments, such as the tokens of a streamed language
// model response.
//
// # Parsing
//
// The Parser type consumes input one chunk at a time. Call Feed with each
// chunk as it arrives, and Snapshot whenever the current best-effort value is
// needed:
//
//	p := jstream.NewParser()
//	for chunk := range chunks {
//	   if err := p.Feed(chunk); err != nil {
//	      log.Fatalf("Feed failed: %v", err)
//	   }
//	   log.Printf("So far: %s", p.Snapshot().JSON())
//	}
//
// A chunk may end anywhere, including in the middle of a key, a string, or a
// multi-byte UTF-8 sequence. That is not an error: the parser keeps its state
// and resumes with the next chunk. Feed reports an error only when the input
// seen so far cannot be the prefix of a valid object. In that case the error
// has concrete type *jstream.SyntaxError, and its Kind says what went wrong:
//
//	Kind             | Meaning
//	---------------- | ----------------------------------------------
//	UnexpectedToken  | a character not allowed at this point
//	DuplicateKey     | a key already present in the same object
//	UnbalancedCloser | a "}" with no matching "{"
//	InvalidLiteral   | an unquoted value other than true, false, null, or an integer
//
// # Snapshots
//
// A snapshot contains every key whose closing quote has been seen. A key whose
// value is a string still being received maps to the text received so far. A
// key whose value is not yet known, or is an unquoted literal that has not yet
// been terminated, maps to null. A key still being received is omitted.
//
// Snapshots are copies: feeding more input does not change a snapshot that
// was already returned.
//
// # Streams
//
// The Stream method drives a Parser from an io.Reader, reporting a snapshot
// after each read:
//
//	p := jstream.NewParser()
//	err := p.Stream(resp.Body, func(obj *jstream.Object) error {
//	   log.Printf("Partial: %s", obj.JSON())
//	   return nil
//	})
package jstream

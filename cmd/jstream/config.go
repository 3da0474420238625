// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"os"
	"strconv"
)

// envInt returns the integer value of the named environment variable, or
// dflt if it is unset or not a valid integer.
func envInt(name string, dflt int) int {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return dflt
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Warningf("ignoring %s=%q: %v", name, s, err)
		return dflt
	}
	return v
}

// openInput opens the named file, or stdin if args is empty or "-".
func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(args[0])
}

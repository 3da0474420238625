// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/creachadair/jstream"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

func newReplayCmd() *cobra.Command {
	var chunkSize int
	var jwcc bool

	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Feed a document in fixed-size chunks and print each snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				return fmt.Errorf("invalid chunk size %d", chunkSize)
			}
			in, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if jwcc {
				data, err = hujson.Standardize(data)
				if err != nil {
					return fmt.Errorf("standardize input: %w", err)
				}
			}
			return runReplay(cmd.OutOrStdout(), data, chunkSize)
		},
	}

	cmd.Flags().IntVarP(&chunkSize, "chunk", "c", envInt("JSTREAM_CHUNK_SIZE", 8), "chunk size in bytes")
	cmd.Flags().BoolVar(&jwcc, "jwcc", false, "accept JSON with comments and trailing commas")

	return cmd
}

func runReplay(w io.Writer, data []byte, chunkSize int) error {
	p := jstream.NewParser()
	for i, chunk := range splitChunks(data, chunkSize) {
		if err := p.Feed(string(chunk)); err != nil {
			return fmt.Errorf("chunk %d: %w", i+1, err)
		}
		log.Debugf("chunk %d: %q state=%v depth=%d", i+1, chunk, p.State(), p.Depth())
		fmt.Fprintln(w, p.Snapshot().JSON())
	}
	if !p.Complete() {
		log.Noticef("input ended before the object was complete (state %v)", p.State())
	}
	return nil
}

// splitChunks splits data into consecutive pieces of at most n bytes.
func splitChunks(data []byte, n int) [][]byte {
	var out [][]byte
	for len(data) > n {
		out = append(out, data[:n])
		data = data[n:]
	}
	if len(data) != 0 {
		out = append(out, data)
	}
	return out
}

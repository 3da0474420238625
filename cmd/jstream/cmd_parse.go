// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jstream"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Stream a document through the parser and print the final snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			p := jstream.NewParser()
			var last *jstream.Object
			var n int
			err = p.Stream(in, func(obj *jstream.Object) error {
				n++
				last = obj
				log.Debugf("snapshot %d: %d members", n, obj.Len())
				return nil
			})
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if last == nil {
				last = p.Snapshot()
			}
			fmt.Fprintln(cmd.OutOrStdout(), last.JSON())
			if p.Complete() {
				fmt.Fprintln(cmd.ErrOrStderr(), "complete")
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "incomplete")
			}
			return nil
		},
	}
}

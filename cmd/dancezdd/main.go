// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dalzilio/dancezdd"
	"github.com/spf13/cobra"
)

var zddFile string

func main() {
	root := &cobra.Command{
		Use:           "dancezdd",
		Short:         "Find every exact cover enumerated by a ZDD, Dancing Links style",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVarP(&zddFile, "zdd-file", "z", "", "path to the ZDD input file (required)")
	root.MarkFlagRequired("zdd-file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(zddFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't open %s: %s\n", zddFile, err)
		return err
	}
	defer f.Close()

	numVar, err := dancezdd.CountVariables(f)
	if err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	z, err := dancezdd.Load(f, numVar, dancezdd.Sanity(true))
	if err != nil {
		if z == nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "initial zdd is invalid:", err)
	}
	fmt.Fprintln(os.Stderr, "load files done")

	start := time.Now()
	solutions, err := z.Search()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println(z.Summary(elapsed))
	for _, sol := range solutions {
		fmt.Println(sol)
	}
	return nil
}

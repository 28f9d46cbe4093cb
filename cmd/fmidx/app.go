package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bebop/fmidx/bwt"
)

// application builds the *cli.App the fmidx binary runs. It is defined
// separately from main so tests can exercise it without an os.Exit call
// ever firing, the same split this codebase's own command-line entry point
// uses.
func application() *cli.App {
	inputFlag := &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "path to a file containing a binary sequence",
		Required: true,
	}
	patternFlag := &cli.StringFlag{
		Name:     "pattern",
		Aliases:  []string{"p"},
		Usage:    "binary pattern to search for",
		Required: true,
	}

	return &cli.App{
		Name:  "fmidx",
		Usage: "build and query an FM-index over a binary sequence",
		// Errors are returned from Run untouched; run in main.go turns an
		// exit-coded error into the process exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "build an index from a file and print a summary",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					idx, err := buildFromFile(c.String("input"))
					if err != nil {
						return err
					}
					fmt.Println(summarize(idx))
					return nil
				},
			},
			{
				Name:  "count",
				Usage: "count occurrences of a pattern",
				Flags: []cli.Flag{inputFlag, patternFlag},
				Action: func(c *cli.Context) error {
					idx, err := buildFromFile(c.String("input"))
					if err != nil {
						return err
					}
					offsets, err := idx.Occurrences(c.String("pattern"))
					if err != nil {
						return asExitErr(err)
					}
					fmt.Println(len(offsets))
					return nil
				},
			},
			{
				Name:  "locate",
				Usage: "print the sorted offsets where a pattern occurs",
				Flags: []cli.Flag{inputFlag, patternFlag},
				Action: func(c *cli.Context) error {
					idx, err := buildFromFile(c.String("input"))
					if err != nil {
						return err
					}
					offsets, err := idx.Occurrences(c.String("pattern"))
					if err != nil {
						return asExitErr(err)
					}
					strs := make([]string, len(offsets))
					for i, o := range offsets {
						strs[i] = strconv.Itoa(o)
					}
					fmt.Println(strings.Join(strs, ","))
					return nil
				},
			},
			{
				Name:  "invert",
				Usage: "rebuild the original sequence from its index",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					idx, err := buildFromFile(c.String("input"))
					if err != nil {
						return err
					}
					s, err := idx.Invert()
					if err != nil {
						return asExitErr(err)
					}
					fmt.Println(s)
					return nil
				},
			},
			{
				Name:  "snapshot",
				Usage: "build an index and write its binary snapshot to disk",
				Flags: []cli.Flag{
					inputFlag,
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					idx, err := buildFromFile(c.String("input"))
					if err != nil {
						return err
					}
					snap, err := bwt.Encode(idx)
					if err != nil {
						return asExitErr(err)
					}
					if err := os.WriteFile(c.String("out"), snap.Bytes(), 0o644); err != nil {
						return cli.Exit(err, 1)
					}
					fmt.Println(snap.String())
					return nil
				},
			},
			{
				Name:  "inspect",
				Usage: "print a snapshot file's header without rebuilding",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "snapshot", Aliases: []string{"s"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					data, err := os.ReadFile(c.String("snapshot"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					snap, err := bwt.ParseSnapshotFile(data)
					if err != nil {
						return asExitErr(err)
					}
					idx, err := bwt.LoadSnapshot(snap)
					if err != nil {
						return asExitErr(err)
					}
					fmt.Println(summarize(idx))
					return nil
				},
			},
		},
	}
}

// buildFromFile reads path, strips trailing whitespace, and builds an
// Index, translating the two failure modes the CLI surface documents: an
// unreadable file exits 1, an invalid sequence exits 2.
func buildFromFile(path string) (bwt.Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bwt.Index{}, cli.Exit(err, 1)
	}
	s := strings.TrimRight(string(raw), " \t\r\n")
	idx, err := bwt.Build(s)
	if err != nil {
		return bwt.Index{}, asExitErr(err)
	}
	return idx, nil
}

// asExitErr maps a bwt.Error to the CLI's exit-code contract: InvalidInput
// is the only kind a caller can fix by changing their input, so it alone
// gets the distinct exit code 2; everything else (IndexOutOfRange,
// InternalInvariant) is a programming error from the CLI's perspective and
// exits 1 like any other fatal error.
func asExitErr(err error) error {
	var bwtErr *bwt.Error
	if e, ok := err.(*bwt.Error); ok {
		bwtErr = e
	}
	if bwtErr != nil && bwtErr.Kind == bwt.InvalidInput {
		return cli.Exit(err, 2)
	}
	return cli.Exit(err, 1)
}

func summarize(idx bwt.Index) string {
	return fmt.Sprintf("n=%d", idx.Len())
}

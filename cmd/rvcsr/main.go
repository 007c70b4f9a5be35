// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/rvcsr/csr"
	"github.com/ezrec/rvcsr/script"
	"github.com/ezrec/rvcsr/value"
)

// defines collects repeated -D NAME=value flags.
type defines map[string]uint64

func (def defines) String() string {
	var list []string
	for name, val := range def {
		list = append(list, fmt.Sprintf("%v=%#x", name, val))
	}
	return strings.Join(list, ",")
}

func (def defines) Set(text string) (err error) {
	name, expr, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("'%v' is not NAME=value", text)
	}
	val, err := (&value.Parser{Define: def}).Parse(expr)
	if err != nil {
		return
	}
	def[name] = val
	return
}

func list() {
	group := ""
	for ent := range csr.Default.Entries() {
		if ent.Group != group {
			group = ent.Group
			fmt.Printf("\n%v:\n", group)
		}
		fmt.Printf("  %v\n", ent)
	}
}

func main() {
	var listing bool
	var batch string
	var verbose bool
	var strict bool
	equates := defines{}

	flag.BoolVar(&listing, "l", false, "List the known registers")
	flag.StringVar(&batch, "b", "", "Batch file to decode, '-' for stdin")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "s", false, "Exit with status 2 if any field has a warning")
	flag.Var(equates, "D", "Define NAME=value for value expressions (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] <csr> <value>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if listing {
		list()
		return
	}

	warnings := 0

	if len(batch) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf := os.Stdin
		if batch != "-" {
			var err error
			inf, err = os.Open(batch)
			if err != nil {
				log.Fatalf("%v: %v", batch, err)
			}
			defer inf.Close()
		}

		scr := &script.Script{Verbose: verbose}
		for name, val := range equates {
			scr.Predefine(name, val)
		}
		if err := scr.Parse(inf); err != nil {
			log.Fatalf("%v: %v", batch, err)
		}

		var err error
		warnings, err = scr.Run(os.Stdout, csr.Default)
		if err != nil {
			log.Fatalf("%v: %v", batch, err)
		}
	} else {
		if flag.NArg() != 2 {
			flag.Usage()
			os.Exit(1)
		}

		id, text := flag.Arg(0), flag.Arg(1)
		raw, err := (&value.Parser{Define: equates}).Parse(text)
		if err != nil {
			log.Fatalf("%v: %v", id, err)
		}

		reg, err := csr.Decode(id, raw)
		if err != nil {
			log.Fatal(err)
		}

		if verbose {
			spew.Dump(reg)
		}

		fmt.Print(reg)
		warnings = len(reg.Warnings())
	}

	if strict && warnings != 0 {
		os.Exit(2)
	}
}

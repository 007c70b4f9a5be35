// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script decodes batches of register values.
//
// A batch is line oriented:
//
//	; comments start with ';' or '#'
//	.equ RV64 2
//	misa    $(RV64 << 62 | 0x141101)
//	0x300   0xa00001800
//
// Each request line names a register (or address) and its value. Values
// may refer to earlier .equ definitions.
package script

import (
	"bufio"
	"io"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/rvcsr/csr"
	"github.com/ezrec/rvcsr/value"
)

// Request is a single decode of a batch.
type Request struct {
	LineNo int
	Id     string
	Value  uint64
}

// Script is a parsed batch.
type Script struct {
	Verbose  bool
	Requests []Request
	Equate   map[string]uint64

	predefine map[string]uint64
}

// Predefine sets an equate that is visible to every parse.
func (scr *Script) Predefine(name string, val uint64) {
	if scr.predefine == nil {
		scr.predefine = make(map[string]uint64)
	}
	scr.predefine[name] = val
}

// Parse parses an input stream into decode requests.
func (scr *Script) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	scr.Requests = scr.Requests[:0]
	scr.Equate = maps.Clone(scr.predefine)
	if scr.Equate == nil {
		scr.Equate = make(map[string]uint64)
	}
	parser := &value.Parser{Define: scr.Equate}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if scr.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		// .equ NAME VALUE
		if words[0] == ".equ" {
			if len(words) < 3 {
				err = ErrEquateSyntax
				return
			}
			name := words[1]
			if _, ok := scr.Equate[name]; ok {
				err = ErrEquateDuplicate
				return
			}
			var val uint64
			val, err = parser.Parse(strings.Join(words[2:], " "))
			if err != nil {
				return
			}
			scr.Equate[name] = val
			continue
		}

		if strings.HasPrefix(words[0], ".") {
			err = ErrDirective
			return
		}

		// NAME VALUE
		if len(words) < 2 {
			err = ErrValueMissing
			return
		}
		var val uint64
		val, err = parser.Parse(strings.Join(words[1:], " "))
		if err != nil {
			return
		}
		scr.Requests = append(scr.Requests, Request{
			LineNo: lineno,
			Id:     words[0],
			Value:  val,
		})
	}

	line = ""
	err = scanner.Err()
	return
}

// Run decodes every request through reg, writing each report to w
// followed by an empty line. It stops at the first request that does not
// resolve, and returns the number of fields that decoded to a warning.
func (scr *Script) Run(w io.Writer, reg *csr.Registry) (warnings int, err error) {
	for _, req := range scr.Requests {
		var out *csr.Register
		out, err = reg.Decode(req.Id, req.Value)
		if err != nil {
			err = ErrRuntime{LineNo: req.LineNo, Err: err}
			return
		}

		warnings += len(out.Warnings())

		_, err = io.WriteString(w, out.String()+"\n")
		if err != nil {
			return
		}
	}

	return
}

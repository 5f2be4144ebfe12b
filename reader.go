// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line of the ZDD text format (spec §6).
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zdd file parse error at line %d (%q): %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type rawLine struct {
	line           int
	id             int32
	v              int32
	loTok, hiTok   string
}

func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if text == "" || text[0] == '.' {
			continue
		}
		if err := fn(lineNo, strings.Fields(text)); err != nil {
			return err
		}
	}
	return sc.Err()
}

// CountVariables does a first pass over r, returning the number of distinct
// variables declared by its node lines. This mirrors get_num_vars_from_zdd_file
// in the original engine's CLI driver: callers use it to size the engine
// before the real Load.
func CountVariables(r io.Reader) (int32, error) {
	vars := make(map[int32]struct{})
	err := scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) < 2 {
			return nil
		}
		v, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return &ParseError{Line: lineNo, Text: strings.Join(fields, " "), Err: err}
		}
		vars[int32(v)] = struct{}{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int32(len(vars)), nil
}

// Load reads a ZDD in the line-oriented text format of spec §6 and builds an
// engine ready for Search. numVar is the size of the universe {1..numVar};
// see CountVariables.
func Load(r io.Reader, numVar int32, opts ...func(*configs)) (*ZDD, error) {
	var lines []rawLine
	err := scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) != 4 {
			return &ParseError{Line: lineNo, Text: strings.Join(fields, " "), Err: fmt.Errorf("expected 4 fields, got %d", len(fields))}
		}
		id, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return &ParseError{Line: lineNo, Text: strings.Join(fields, " "), Err: err}
		}
		v, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return &ParseError{Line: lineNo, Text: strings.Join(fields, " "), Err: err}
		}
		lines = append(lines, rawLine{line: lineNo, id: int32(id), v: int32(v), loTok: fields[2], hiTok: fields[3]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return build(lines, numVar, opts...)
}

func build(lines []rawLine, numVar int32, opts ...func(*configs)) (*ZDD, error) {
	c := makeconfigs(numVar)
	for _, opt := range opts {
		opt(c)
	}
	z := newZDD(c)
	if len(lines) == 0 {
		z.root = top
		return z, nil
	}

	idx := make(map[int32]int32, len(lines))
	for i, ln := range lines {
		idx[ln.id] = int32(i)
	}
	resolve := func(tok string, ln rawLine) (int32, error) {
		switch tok {
		case "T":
			return top, nil
		case "B":
			return bot, nil
		default:
			ref, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return 0, &ParseError{Line: ln.line, Text: tok, Err: err}
			}
			id, ok := idx[int32(ref)]
			if !ok {
				return 0, &ParseError{Line: ln.line, Text: tok, Err: fmt.Errorf("reference to undeclared node %d", ref)}
			}
			return id, nil
		}
	}

	z.table = make([]nodeCell, len(lines))
	for i, ln := range lines {
		lo, err := resolve(ln.loTok, ln)
		if err != nil {
			return nil, err
		}
		hi, err := resolve(ln.hiTok, ln)
		if err != nil {
			return nil, err
		}
		z.table[i] = nodeCell{
			v: ln.v, hi: hi, lo: lo,
			up: -1, down: -1,
			parentsHead: nilPlink, parentsTail: nilPlink,
			hiPrev: nilPlink, hiNext: nilPlink,
			loPrev: nilPlink, loNext: nilPlink,
		}
	}
	z.root = int32(len(lines) - 1)
	z.setupDancingLinks()

	if c.sanityCheck {
		if err := z.checkInvariants(); err != nil {
			z.seterror("initial zdd is invalid: %s", err)
			return z, z.err
		}
	}
	return z, nil
}

// The twoadic command inspects 2-adic integers.
//
// Values may be given as decimal integers or in 2-adic
// notation such as "...1000" (which is -8). Negative decimal
// arguments must follow "--" so they are not read as flags.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fxamacker/cbor/v2"
	"github.com/kr/pretty"

	"github.com/rogpeppe/twoadic/twoadic"
)

type cli struct {
	Bits bitsCmd `cmd:"" help:"Print the first bits of a value's expansion."`
	Cmp  cmpCmd  `cmd:"" help:"Compare two values, printing <, = or >."`
	Not  notCmd  `cmd:"" help:"Print the bitwise complement of a value."`
	Show showCmd `cmd:"" help:"Print a value in canonical 2-adic notation."`
	CBOR cborCmd `cmd:"" name:"cbor" help:"Encode a value as CBOR, or decode one."`
}

// env holds what commands need from the outside world.
type env struct {
	out io.Writer
}

type bitsCmd struct {
	N     int           `short:"n" default:"32" help:"Number of bits to print."`
	MSB   bool          `help:"Print the most significant bit first."`
	Value twoadic.Value `arg:"" help:"The value."`
}

func (c *bitsCmd) Run(e *env) error {
	if c.N < 0 {
		return fmt.Errorf("bit count %d is negative", c.N)
	}
	bits := c.Value.Head(c.N)
	var b strings.Builder
	for j := range bits {
		if c.MSB {
			j = len(bits) - 1 - j
		}
		b.WriteString(bits[j].String())
	}
	_, err := fmt.Fprintln(e.out, b.String())
	return err
}

type cmpCmd struct {
	A twoadic.Value `arg:"" help:"First value."`
	B twoadic.Value `arg:"" help:"Second value."`
}

func (c *cmpCmd) Run(e *env) error {
	_, err := fmt.Fprintln(e.out, [...]string{"<", "=", ">"}[twoadic.Compare(c.A, c.B)+1])
	return err
}

type notCmd struct {
	Value twoadic.Value `arg:"" help:"The value."`
}

func (c *notCmd) Run(e *env) error {
	_, err := fmt.Fprintln(e.out, c.Value.Not())
	return err
}

type showCmd struct {
	Struct bool          `help:"Describe the internal structure of the value."`
	Value  twoadic.Value `arg:"" help:"The value."`
}

// description is the form printed by "show --struct".
type description struct {
	Notation string
	Shape    string
	Prefix   string
	Tail     string
}

func (c *showCmd) Run(e *env) error {
	if !c.Struct {
		_, err := fmt.Fprintln(e.out, c.Value)
		return err
	}
	var prefix strings.Builder
	for _, bit := range c.Value.Prefix() {
		prefix.WriteString(bit.String())
	}
	_, err := pretty.Fprintf(e.out, "%# v\n", description{
		Notation: c.Value.String(),
		Shape:    c.Value.Shape().String(),
		Prefix:   prefix.String(),
		Tail:     c.Value.Tail().String(),
	})
	return err
}

type cborCmd struct {
	Decode bool   `short:"d" help:"Decode hex-encoded CBOR instead of encoding a value."`
	Input  string `arg:"" help:"The value, or hex-encoded CBOR with --decode."`
}

func (c *cborCmd) Run(e *env) error {
	if c.Decode {
		data, err := hex.DecodeString(c.Input)
		if err != nil {
			return fmt.Errorf("invalid hex: %v", err)
		}
		var v twoadic.Value
		if err := cbor.Unmarshal(data, &v); err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.out, v)
		return err
	}
	v, err := twoadic.Parse(c.Input)
	if err != nil {
		return err
	}
	data, err := cbor.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, hex.EncodeToString(data))
	return err
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("twoadic"),
		kong.Description("Inspect 2-adic integers."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&env{out: out})
}

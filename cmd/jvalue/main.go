// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jvalue parses JSON values and prints their structure.
//
// Usage:
//
//	jvalue [-jwcc] [-number] [file ...]
//
// Each named file is parsed as a single value. If no files are named, the
// value is read from stdin. The argument "-" also denotes stdin.
//
// With -number, each input is parsed as a single decimal number and printed
// in canonical form along with its digits and exponent.
// With -jwcc, input may contain comments and trailing commas.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/decimal"
	"github.com/creachadair/jcomb/jwcc"
)

var (
	allowJWCC  = flag.Bool("jwcc", false, "Accept comments and trailing commas")
	numberOnly = flag.Bool("number", false, "Parse each input as a decimal number")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jvalue: ")

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		text, err := readInput(name)
		if err != nil {
			log.Fatalf("Read input: %v", err)
		}
		out, err := render(text)
		if err != nil {
			log.Fatalf("Parse %s: %v", name, err)
		}
		fmt.Println(out)
	}
}

func readInput(name string) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	return string(data), err
}

func render(text string) (string, error) {
	if *numberOnly {
		d, rest, err := decimal.Parse(strings.TrimSpace(text))
		if err != nil {
			return "", err
		} else if rest != "" {
			return "", fmt.Errorf("extra input after number: %q", rest)
		}
		return fmt.Sprintf("%s (negative=%v digits=%v exponent=%d)",
			d, d.Negative(), d.Digits(), d.Exponent()), nil
	}

	var v ast.Value
	var err error
	if *allowJWCC {
		v, err = jwcc.Parse(text)
	} else {
		v, err = ast.ParseSingle(text)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v: %s", v.Kind(), v), nil
}

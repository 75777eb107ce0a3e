// SPDX-License-Identifier: Unlicense OR MIT

// Command jsbundle builds the browser version of hellotriangle: a
// directory holding main.wasm, the Go wasm_exec.js support file and
// an index.html page that calls drawTriangle.
//
//	go run ./cmd/jsbundle -o web ./cmd/hellotriangle
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	destPath      = flag.String("o", "hellotriangle-web", "output directory")
	canvasID      = flag.String("canvas", "canvas", "id of the canvas element in index.html")
	title         = flag.String("title", "Hello Triangle", "page title")
	printCommands = flag.Bool("x", false, "print the commands")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: jsbundle [flags] [package]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	pkg := flag.Arg(0)
	if pkg == "" {
		pkg = "./cmd/hellotriangle"
	}
	b := &bundle{
		pkg:      pkg,
		out:      *destPath,
		title:    *title,
		canvasID: *canvasID,
	}
	if err := b.build(); err != nil {
		fmt.Fprintf(os.Stderr, "jsbundle: %v\n", err)
		os.Exit(1)
	}
}

func runCmdRaw(cmd *exec.Cmd) ([]byte, error) {
	if *printCommands {
		fmt.Printf("%s\n", strings.Join(cmd.Args, " "))
	}
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%s failed: %s%s", strings.Join(cmd.Args, " "), out, exitErr.Stderr)
	}
	return nil, err
}

func runCmd(cmd *exec.Cmd) (string, error) {
	out, err := runCmdRaw(cmd)
	return string(bytes.TrimSpace(out)), err
}

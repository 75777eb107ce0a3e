// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

type bundle struct {
	pkg      string
	out      string
	title    string
	canvasID string
}

func (b *bundle) build() error {
	if err := b.checkPackage(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.out, 0o700); err != nil {
		return err
	}
	goroot, err := runCmd(exec.Command("go", "env", "GOROOT"))
	if err != nil {
		return err
	}
	wasmJS, err := findWasmExec(goroot)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		cmd := exec.Command("go", "build", "-o", filepath.Join(b.out, "main.wasm"), b.pkg)
		cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
		_, err := runCmd(cmd)
		return err
	})
	g.Go(func() error {
		return copyFile(filepath.Join(b.out, "wasm_exec.js"), wasmJS)
	})
	g.Go(func() error {
		f, err := os.Create(filepath.Join(b.out, "index.html"))
		if err != nil {
			return err
		}
		if err := b.writeIndex(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
	return g.Wait()
}

// checkPackage verifies that pkg is a command that builds for js/wasm.
func (b *bundle) checkPackage() error {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Env:  append(os.Environ(), "GOOS=js", "GOARCH=wasm"),
	}, b.pkg)
	if err != nil {
		return err
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("%s matches %d packages, want 1", b.pkg, len(pkgs))
	}
	p := pkgs[0]
	if len(p.Errors) > 0 {
		return p.Errors[0]
	}
	if p.Name != "main" {
		return fmt.Errorf("%s is package %s, not a command", p.PkgPath, p.Name)
	}
	return nil
}

func (b *bundle) writeIndex(w io.Writer) error {
	return indexTemplate.Execute(w, struct {
		Title    string
		CanvasID string
	}{
		Title:    b.title,
		CanvasID: b.canvasID,
	})
}

// findWasmExec locates the JS support file of the Go wasm port. Go
// 1.24 moved it from misc/wasm to lib/wasm.
func findWasmExec(goroot string) (string, error) {
	for _, dir := range []string{"lib", "misc"} {
		p := filepath.Join(goroot, dir, "wasm", "wasm_exec.js")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to find wasm_exec.js in %s/lib/wasm or %s/misc/wasm", goroot, goroot)
}

func copyFile(dst, src string) (err error) {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(w, r)
	return err
}

var indexTemplate = template.Must(template.New("").Parse(jsIndex))

const jsIndex = `<!doctype html>
<html>
	<head>
		<meta charset="utf-8">
		{{ if .Title }}<title>{{.Title}}</title>{{ end }}
		<script src="wasm_exec.js"></script>
		<style>
			body { margin:0;padding:0;background:#000; }
		</style>
	</head>
	<body>
		<canvas id="{{.CanvasID}}" width="640" height="480"></canvas>
		<script>
			(() => {
				const go = new Go();
				WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then((result) => {
					go.run(result.instance);
					const err = drawTriangle("{{.CanvasID}}");
					if (err) {
						console.error(err);
					}
				});
			})();
		</script>
	</body>
</html>`

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var headless = flag.Bool("headless", true, "run end-to-end tests in headless mode")

// readPixels draws the triangle again and samples the center and a
// corner of the canvas in the same task, before the browser may
// discard the drawing buffer.
const readPixels = `(() => {
	const err = drawTriangle("canvas");
	if (err) {
		return "error: " + err.message;
	}
	const cnv = document.getElementById("canvas");
	const gl = cnv.getContext("webgl");
	const px = new Uint8Array(4);
	const sample = (x, y) => {
		gl.readPixels(x, y, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, px);
		return Array.from(px).join(",");
	};
	return sample(cnv.width/2, cnv.height/2) + " " + sample(1, 1);
})()`

func TestEndToEndJS(t *testing.T) {
	if testing.Short() {
		t.Skip("end-to-end test builds a wasm binary and needs Chrome")
	}
	dir := t.TempDir()
	b := &bundle{pkg: "../hellotriangle", out: dir, title: "e2e", canvasID: "canvas"}
	require.NoError(t, b.build())

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", *headless),
		// Software WebGL so the test runs without a GPU.
		chromedp.Flag("use-gl", "swiftshader"),
		chromedp.Flag("enable-unsafe-swiftshader", true),
	)
	actx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	t.Cleanup(cancel)
	ctx, cancel := chromedp.NewContext(actx, chromedp.WithLogf(t.Logf))
	t.Cleanup(cancel)
	ctx, cancel = context.WithTimeout(ctx, time.Minute)
	t.Cleanup(cancel)

	if err := chromedp.Run(ctx); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			t.Skipf("test requires Chrome to be installed: %v", err)
		}
		t.Fatal(err)
	}
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if ev, ok := ev.(*runtime.EventConsoleAPICalled); ok {
			var args strings.Builder
			for i, arg := range ev.Args {
				if i > 0 {
					args.WriteString(", ")
				}
				args.Write(arg.Value)
			}
			t.Logf("console %s: %s", ev.Type, args.String())
		}
	})

	ts := httptest.NewServer(http.FileServer(http.Dir(dir)))
	t.Cleanup(ts.Close)

	var ready bool
	var pixels string
	require.NoError(t, chromedp.Run(ctx,
		chromedp.Navigate(ts.URL),
		chromedp.Poll(`typeof drawTriangle === "function"`, &ready),
		chromedp.Evaluate(readPixels, &pixels),
	))
	if strings.Contains(pixels, "webgl is not supported") {
		t.Skipf("browser has no WebGL: %s", pixels)
	}
	assert.Equal(t, "255,255,255,255 0,0,0,255", pixels)
}

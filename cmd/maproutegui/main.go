//go:build cgo

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	webview "github.com/webview/webview_go"

	"maproute/pkg/config"
)

const configPath = "configs/maproute.yaml"

// Desktop shell for a maproute server already running locally.
func main() {
	// Webview requires main thread
	runtime.LockOSThread()

	// Run from the executable directory to find configs/ and .env
	exe, _ := os.Executable()
	if err := os.Chdir(filepath.Dir(exe)); err != nil {
		panic(err)
	}

	addr := config.DefaultConfig().Server.Address
	if cfg, err := config.Load(configPath); err == nil {
		addr = cfg.Server.Address
	}

	w := webview.New(false)
	defer w.Destroy()

	// Block the context menu via injection
	w.Init(`
		window.addEventListener('contextmenu', function(e) {
			e.preventDefault();
		}, true); // Use capture phase
	`)

	w.SetTitle("MapRoute")
	w.SetSize(1280, 860, webview.HintNone)
	w.Navigate(fmt.Sprintf("http://%s/", addr))
	w.Run()
}

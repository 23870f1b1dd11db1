//go:build js && wasm

// flappy-web runs the game in a browser canvas. The page provides
// #bestScore and #currentScore elements for the score displays and a
// #difficulty select whose change events set the speed. A ?sheet= query
// parameter names the sprite sheet; without one a placeholder is drawn.
package main

import (
	"context"
	"net/url"
	"os"
	"syscall/js"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-web",
	})

	doc := js.Global().Get("document")
	selector := doc.Call("getElementById", "difficulty")

	difficulty := config.DifficultySimple
	if !selector.IsNull() {
		if d, err := config.ParseDifficulty(selector.Get("value").String()); err == nil {
			difficulty = d
		}
	}

	cfg := core.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()

	opts := window.Options{
		Config:         cfg,
		Difficulty:     difficulty,
		Sheet:          sheetURL(),
		Logger:         logger,
		Frontend:       "web",
		BestDisplay:    element(doc, "bestScore"),
		CurrentDisplay: element(doc, "currentScore"),
	}

	game, err := window.NewGame(context.Background(), opts)
	if err != nil {
		logger.Fatal("could not create game", "error", err)
	}

	if !selector.IsNull() {
		selector.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
			value := this.Get("value").String()
			d, err := config.ParseDifficulty(value)
			if err != nil {
				logger.Warn("ignoring difficulty", "value", value)
				return nil
			}
			game.Session().RequestDifficulty(d)
			return nil
		}))
	}

	if err := window.RunGame(game, opts); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}

// element returns a display writing to the element's text, or nil when the
// page has no such element.
func element(doc js.Value, id string) flappy.TextDisplay {
	el := doc.Call("getElementById", id)
	if el.IsNull() {
		return nil
	}
	return flappy.TextDisplayFunc(func(text string) {
		el.Set("textContent", text)
	})
}

// sheetURL resolves the ?sheet= parameter against the page location.
func sheetURL() string {
	href := js.Global().Get("location").Get("href").String()
	page, err := url.Parse(href)
	if err != nil {
		return ""
	}
	sheet := page.Query().Get("sheet")
	if sheet == "" {
		return ""
	}
	ref, err := url.Parse(sheet)
	if err != nil {
		return ""
	}
	return page.ResolveReference(ref).String()
}

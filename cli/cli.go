// Package cli provides the line-oriented terminal front ends: a plain
// scanner loop for pipes and scripts, and a raw-mode line editor.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// CLI handles terminal interaction with the visitor.
type CLI struct {
	Engine    *engine.Engine
	Recorder  *render.Recorder // the engine's output
	Catalog   *render.Catalog
	Writer    *render.TextWriter
	In        io.Reader
	Out       io.Writer
	Greeting  []types.Element
	Frames    engine.Frames // board frames, raw mode only
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine and its output recorder.
func New(eng *engine.Engine, rec *render.Recorder, cat *render.Catalog) *CLI {
	return &CLI{
		Engine:   eng,
		Recorder: rec,
		Catalog:  cat,
		Writer:   render.NewTextWriter(ColorStyler{}),
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

// Run starts the plain loop: prompt → line → submit → output, until the
// input ends. Lines starting with '#' are script comments.
func (c *CLI) Run() error {
	if len(c.Greeting) > 0 {
		c.printLine(c.Writer.RenderAll(c.Greeting))
		c.printLine("")
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("$ ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(line)
		}

		c.Engine.Submit(line)
		c.printLine(c.output())
		c.printLine("")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// output renders the engine's current output.
func (c *CLI) output() string {
	return c.Writer.RenderAll(c.Catalog.ExpandAll(c.Recorder.Blocks()))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package html streams the HTML for a parsed document.
// Blocks are written one at a time, so a cancelled context stops output
// at a block boundary.
//
// Blocks and spans correspond to the following HTML tags:
// 	Paragraph                   <p></p>
// 	Heading                     <h1></h1>, <h2></h2>, <h3></h3>, <h4></h4>, <h5></h5>, <h6></h6>
// 	Code block                  <pre><code></code></pre>
// 	Quote                       <blockquote></blockquote>
// 	Unordered list              <ul><li></li></ul>
// 	Ordered list                <ol><li></li></ol>
// 	Bold                        <b></b>
// 	Italic                      <i></i>
// 	Code span                   <code></code>
// 	Link                        <a href=""></a>
// 	Image                       <img src="" alt="">
//
// Text is written as is, without escaping.
package html // import "akhil.cc/marknode/gen/html"

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"sync"

	"akhil.cc/marknode/ast"
	"akhil.cc/marknode/gen"
)

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	n, err = s.w.Write(p)
	return
}

type stickyWriter struct {
	err error
	w   io.Writer
}

func (s *stickyWriter) Write(p []byte) (n int, err error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err = s.w.Write(p)
	s.err = err
	return
}

// Generator represents a non-reusable HTML output generator for a document root.
type Generator struct {
	// Stdout and Stderr specify the generator's standard output and standard error.
	//
	// HTML output will be written to standard out. Standard error is only
	// written by the Filter process.
	//
	// If Stdout == Stderr, at most one goroutine at a time will call Write.
	Stdout io.Writer
	Stderr io.Writer

	// Filter is an optional shell command line. If set, the HTML is piped
	// through it and its output is written to Stdout instead.
	Filter string

	ctx      context.Context
	root     *ast.Parent
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to convert the given root into HTML output.
//
// It sets only the root in the returned structure.
func Gen(root *ast.Parent) *Generator {
	return &Generator{ctx: context.TODO(), root: root}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used both to halt HTML generation
// after writing a block, and to kill the Filter process.
func GenContext(ctx context.Context, root *ast.Parent) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, root: root}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.root == nil {
		return fmt.Errorf("no document")
	}
	if g.waitdone != nil {
		return fmt.Errorf("already started")
	}
	if g.Stdout == nil {
		g.Stdout = ioutil.Discard
	}
	if g.Stderr == nil {
		g.Stderr = ioutil.Discard
	}
	if g.Stdout == g.Stderr {
		g.Stdout = &syncWriter{w: g.Stdout}
		g.Stderr = g.Stdout
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to
// Stdout and Stderr. It is an error to call Wait before Start
// has been called.
//
// Wait will release any resources associated with the generator.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output.
//
// Wait must not be called until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// StderrPipe returns a pipe that is connected to the generator's
// standard error.
//
// Wait must not be called until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StderrPipe.
func (g *Generator) StderrPipe() (io.Reader, error) {
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	pr, pw := io.Pipe()
	g.Stderr = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

// CombinedOutput runs the generator and returns its combined
// standard output and standard error.
func (g *Generator) CombinedOutput() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	var b bytes.Buffer
	g.Stdout = &b
	g.Stderr = &b
	err := g.Run()
	return b.Bytes(), err
}

func (g *Generator) gen() error {
	// Nothing is written for a tree that cannot be rendered.
	if err := ast.Validate(g.root); err != nil {
		return err
	}
	if g.Filter == "" {
		return g.write(g.Stdout)
	}
	pr, pw := io.Pipe()
	werr := make(chan error, 1)
	go func() {
		err := g.write(pw)
		pw.CloseWithError(err)
		werr <- err
	}()
	c := &gen.Command{Ctx: g.ctx, Stderr: g.Stderr}
	ferr := c.Filter(g.Filter, pr, g.Stdout)
	pr.Close()
	err := <-werr
	if ferr != nil {
		return ferr
	}
	if errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}

// write emits the root element, checking for cancellation between blocks.
func (g *Generator) write(w io.Writer) error {
	sw := &stickyWriter{w: w}
	fmt.Fprintf(sw, "<%s%s>", g.root.Tag, g.root.Props.HTML())
	for _, block := range g.root.Children {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
			if err := block.WriteHTML(sw); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(sw, "</%s>", g.root.Tag)
	return sw.err
}

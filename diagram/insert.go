package diagram

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Inserter copies a PlantUML document unchanged and writes a generated
// class block, followed by a blank line, after every directive comment.
// Directives that fail are logged and get no block.
type Inserter struct {
	ClassDir  string
	Marker    string
	Generator *Generator
	// Concurrency bounds parallel class lookups; values below 1 mean 1.
	Concurrency int
}

type directive struct {
	line    int
	pattern string
	path    string
	keep    []string
}

func (d directive) key() string {
	if d.keep == nil {
		return d.path
	}
	return d.path + ":" + strings.Join(d.keep, " ")
}

func (ins *Inserter) marker() string {
	if ins.Marker == "" {
		return DefaultMarker
	}
	return ins.Marker
}

func (ins *Inserter) Insert(ctx context.Context, r io.Reader, w io.Writer) error {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	var directives []directive
	for i, line := range lines {
		pattern, ok := Directive(strings.TrimSpace(line), ins.marker())
		if !ok {
			continue
		}
		fqcn, keep := ParsePattern(pattern)
		directives = append(directives, directive{
			line:    i,
			pattern: pattern,
			path:    ClassPath(ins.ClassDir, fqcn),
			keep:    keep,
		})
	}

	blocks, err := ins.render(ctx, directives)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
		if block := blocks[i]; block != "" {
			bw.WriteString(block)
			bw.WriteString("\n\n")
		}
	}
	return bw.Flush()
}

// render produces one block per directive, keyed by line index. Failed
// directives map to the empty string.
func (ins *Inserter) render(ctx context.Context, directives []directive) (map[int]string, error) {
	results := make([]string, len(directives))
	var group singleflight.Group

	g, gctx := errgroup.WithContext(ctx)
	limit := ins.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, d := range directives {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err, _ := group.Do(d.key(), func() (any, error) {
				return ins.Generator.Generate(gctx, d.path, d.keep)
			})
			if err != nil {
				log.Warningf("skip %q on line %d: %v", d.pattern, d.line+1, err)
				return nil
			}
			results[i] = v.(string)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	blocks := make(map[int]string, len(directives))
	generated := 0
	for i, d := range directives {
		blocks[d.line] = results[i]
		if results[i] != "" {
			generated++
		}
	}
	log.Infof("generated %d of %d diagrams", generated, len(directives))
	return blocks, nil
}

// Package pipeline wires the stages together:
// read → extract → emit (every artifact, in memory) → write.
//
// Nothing is written unless every emitter succeeded, so a formatting error
// never leaves a fresh JSON file next to a stale stylesheet.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gaurav-prasanna/charsgen/core"
	"github.com/gaurav-prasanna/charsgen/core/output"
)

// Pipeline generates every artifact from one source table.
type Pipeline struct {
	Source    string
	Basename  string
	Extractor core.Extractor
	Emitters  []core.Emitter
	Writer    *output.Writer
	Logger    zerolog.Logger
}

// Result summarizes a successful run.
type Result struct {
	Groups   int
	Entities int
	Written  []string
}

type artifact struct {
	ext  string
	data []byte
}

// Run executes the pipeline once.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	// 1. Read
	src, err := p.Writer.ReadSource(p.Source)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	p.Logger.Debug().Str("source", p.Source).Int("bytes", len(src)).Msg("Read source table")

	// 2. Extract
	groups, err := p.Extractor.Extract(src)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	entities := 0
	for _, g := range groups {
		entities += len(g.Entities)
	}
	p.Logger.Info().Int("groups", len(groups)).Int("entities", entities).Msg("Extracted entity groups")

	// 3. Emit all artifacts before touching the output directory.
	artifacts := make([]artifact, 0, len(p.Emitters))
	for _, emitter := range p.Emitters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := emitter.Emit(groups)
		if err != nil {
			return nil, fmt.Errorf("emit %s: %w", emitter.Extension(), err)
		}
		p.Logger.Debug().Str("ext", emitter.Extension()).Int("bytes", len(data)).Msg("Rendered artifact")
		artifacts = append(artifacts, artifact{ext: emitter.Extension(), data: data})
	}

	// 4. Write
	result := &Result{Groups: len(groups), Entities: entities}
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := p.Writer.Write(p.Basename, a.ext, a.data)
		if err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
		p.Logger.Info().Str("path", path).Msg("Wrote artifact")
		result.Written = append(result.Written, path)
	}

	return result, nil
}

// Package velox is the native-side boundary layer of a source-text
// parser: it turns text into an in-memory tree and exposes that tree to
// a host runtime as cheaply as possible.
//
// The normal path (ParseSync, ParseSyncBuffer, ParseAsync) returns a
// serialized payload. The raw path (CreateBuffer, ParseSyncRaw) shares
// one large aligned buffer with the host instead: source goes in at the
// head, the tree is built in place, and only a 32-bit root offset comes
// back through the buffer's trailer.
package velox

import (
	"encoding/json"
	"fmt"

	"velox/internal/arena"
	"velox/internal/ast"
	"velox/internal/diagfmt"
	"velox/internal/estree"
	"velox/internal/parser"
	"velox/internal/source"
	"velox/internal/token"
	"velox/internal/workers"
)

// Options mirror the Babel parser option names the host side uses.
type Options struct {
	// SourceType is "script", "module", "unambiguous" or empty.
	// Explicit script/module wins; otherwise the filename extension
	// decides, refined by content for unambiguous sources.
	SourceType string
	// SourceFilename drives extension-based type detection and
	// diagnostic attribution.
	SourceFilename string
	// PreserveParens emits ParenthesizedExpression nodes. Default true.
	PreserveParens *bool
}

// Comment is one source comment in document order. Start/End are byte
// offsets covering the delimiters; Value is the interior text.
type Comment struct {
	Type  string `json:"type"` // "Line" | "Block"
	Value string `json:"value"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// Result is the normal-path payload. Errors is empty on a clean parse;
// a syntactically broken input still yields a best-effort Program.
type Result struct {
	Program  string    `json:"program"`
	Comments []Comment `json:"comments"`
	Errors   []string  `json:"errors"`
}

// ParseSync parses text and returns the tree as ESTree JSON.
func ParseSync(sourceText string, opts *Options) Result {
	a := arena.New(arenaSizeFor(len(sourceText)))
	defer a.Release()

	f := source.FromString(filenameOf(opts), sourceText)
	ret := parser.Parse(a, f, parserOptions(opts, f))

	program, err := estree.ProgramJSON(ret.Program)
	if err != nil {
		panic(fmt.Errorf("velox: tree serialization failed: %w", err))
	}
	errs := diagfmt.Strings(ret.Bag, f, diagfmt.Opts{})
	if errs == nil {
		errs = []string{}
	}
	return Result{
		Program:  program,
		Comments: convertComments(ret.Comments),
		Errors:   errs,
	}
}

// ParseSyncBuffer parses text and returns the tree in the compact
// self-describing binary form instead of JSON text.
func ParseSyncBuffer(sourceText string, opts *Options) []byte {
	a := arena.New(arenaSizeFor(len(sourceText)))
	defer a.Release()

	f := source.FromString(filenameOf(opts), sourceText)
	ret := parser.Parse(a, f, parserOptions(opts, f))

	payload, err := estree.ProgramBinary(ret.Program)
	if err != nil {
		panic(fmt.Errorf("velox: tree serialization failed: %w", err))
	}
	return payload
}

var defaultPool = workers.NewPool(0)

// ParseAsync runs ParseSync on a worker and returns its completion
// handle. Once dispatched the parse always runs to completion; a worker
// crash surfaces as the handle's error.
func ParseAsync(sourceText string, opts *Options) *workers.Pending[Result] {
	return workers.Go(defaultPool, func() Result {
		return ParseSync(sourceText, opts)
	})
}

// Schema returns a JSON description of every node kind's fields,
// independent of any parse. Hosts use it to build decoders for the
// serialized, binary and raw forms.
func Schema() string {
	out, err := json.Marshal(ast.Schema())
	if err != nil {
		panic(fmt.Errorf("velox: schema serialization failed: %w", err))
	}
	return string(out)
}

// arenaSizeFor sizes an owned arena for one parse. Nodes cost a bounded
// multiple of the source bytes that produced them; overshooting is
// cheap, overflow is fatal, so the factor is generous.
func arenaSizeFor(sourceLen int) int {
	return sourceLen*256 + 1<<16
}

func filenameOf(opts *Options) string {
	if opts == nil {
		return ""
	}
	return opts.SourceFilename
}

// parserOptions resolves the public options into the engine's.
func parserOptions(opts *Options, f *source.File) parser.Options {
	out := parser.Options{
		SourceType:     source.TypeUnambiguous,
		PreserveParens: true,
	}
	if opts == nil {
		return out
	}
	st, _ := source.TypeFromString(opts.SourceType)
	switch st {
	case source.TypeScript, source.TypeModule:
		out.SourceType = st
	default:
		if f.Path != "" {
			out.SourceType = source.TypeFromPath(f.Path)
		}
	}
	if opts.PreserveParens != nil {
		out.PreserveParens = *opts.PreserveParens
	}
	return out
}

func convertComments(comments []token.Comment) []Comment {
	if len(comments) == 0 {
		return []Comment{}
	}
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			Type:  c.Kind.String(),
			Value: c.Text,
			Start: c.Span.Start,
			End:   c.Span.End,
		})
	}
	return out
}

// Package lsp serves PlantUML documents that carry class directives: hover
// previews the generated diagram and completion suggests classes and
// members.
package lsp

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhamidi/genuml/diagram"
	"github.com/dhamidi/genuml/introspect"
	"github.com/dhamidi/genuml/javap"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "genuml"

const requestTimeout = 10 * time.Second

var log = commonlog.GetLogger("genuml.lsp")

type Server struct {
	handler      protocol.Handler
	server       *server.Server
	version      string
	docs         *Documents
	introspector introspect.Introspector
	marker       string
	classDir     string
}

func NewServer(version string, introspector introspect.Introspector, marker string) *Server {
	if marker == "" {
		marker = diagram.DefaultMarker
	}
	s := &Server{
		version:      version,
		docs:         NewDocuments(),
		introspector: introspector,
		marker:       marker,
		classDir:     "classes",
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentCompletion: s.textDocumentCompletion,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}
	s.classDir = resolveClassDir(rootDir, params.InitializationOptions)
	log.Infof("class directory %s", s.classDir)

	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{" ", ".", ":"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

// resolveClassDir reads the "classDir" initialization option, relative to
// root, and falls back to <root>/classes.
func resolveClassDir(root string, options any) string {
	if opts, ok := options.(map[string]any); ok {
		if dir, ok := opts["classDir"].(string); ok && dir != "" {
			if filepath.IsAbs(dir) {
				return dir
			}
			return filepath.Join(root, dir)
		}
	}
	return filepath.Join(root, "classes")
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.Set(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.docs.Set(params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Delete(params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.docs.Set(params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	line, ok := s.docs.Line(params.TextDocument.URI, int(params.Position.Line))
	if !ok {
		return nil, nil
	}
	pattern, ok := diagram.Directive(strings.TrimSpace(line), s.marker)
	if !ok {
		return nil, nil
	}

	fqcn, keep := diagram.ParsePattern(pattern)
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	g := &diagram.Generator{Introspector: s.introspector}
	uml, err := g.Generate(reqCtx, diagram.ClassPath(s.classDir, fqcn), keep)
	if err != nil {
		log.Warningf("hover %s: %v", fqcn, err)
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```plantuml\n" + uml + "\n```",
		},
	}, nil
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	line, ok := s.docs.Line(params.TextDocument.URI, int(params.Position.Line))
	if !ok {
		return nil, nil
	}
	target, ok := directiveTarget(line, int(params.Position.Character), s.marker)
	if !ok {
		return nil, nil
	}

	var candidates []string
	kind := protocol.CompletionItemKindClass
	if target.members() {
		names, err := s.memberNames(target.class)
		if err != nil {
			log.Warningf("complete members of %s: %v", target.class, err)
			return nil, nil
		}
		candidates = names
		kind = protocol.CompletionItemKindField
	} else {
		names, err := ClassNames(s.classDir)
		if err != nil {
			log.Warningf("list classes in %s: %v", s.classDir, err)
			return nil, nil
		}
		candidates = names
	}

	var items []protocol.CompletionItem
	for _, c := range filterPrefix(candidates, target.prefix) {
		items = append(items, protocol.CompletionItem{
			Label: c,
			Kind:  &kind,
		})
	}
	return items, nil
}

func (s *Server) memberNames(fqcn string) ([]string, error) {
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	listing, err := s.introspector.Describe(reqCtx, diagram.ClassPath(s.classDir, fqcn))
	if err != nil {
		return nil, err
	}
	record, err := javap.Parse(listing, nil)
	if err != nil {
		return nil, err
	}
	return MemberNames(record), nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/trema/config"
	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/state"
	"github.com/npillmayer/trema/style/css"
	"github.com/npillmayer/trema/style/cssom"
	"github.com/npillmayer/trema/style/tss"
)

// Errors returned by a Renderer for invalid calls.
var (
	ErrNoBackend       = errors.New("render: no backend")
	ErrNilTree         = errors.New("render: element tree is nil")
	ErrFrameInProgress = errors.New("render: frame already in progress")
)

// Renderer drives frames against a backend. A renderer keeps widget state
// across frames. It is not safe for concurrent use.
type Renderer struct {
	backend  Backend
	states   *state.Manager
	handlers map[string]func()
	sink     FrameSink
	rootTag  string
	maxSubst int
	bufSize  int
	winH     float64
	inFrame  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSink sets a sink receiving a mirror of every backend call.
func WithSink(sink FrameSink) Option {
	return func(r *Renderer) {
		r.sink = sink
	}
}

// WithRootTag sets the tag required for root elements of markup documents.
func WithRootTag(tag string) Option {
	return func(r *Renderer) {
		if tag != "" {
			r.rootTag = tag
		}
	}
}

// WithMaxWidgetAge sets the number of frames widget state survives without
// being rendered.
func WithMaxWidgetAge(n int) Option {
	return func(r *Renderer) {
		r.states = state.NewManager(state.MaxAge(n))
	}
}

// WithMaxSubstitutions caps variable substitution per property value.
func WithMaxSubstitutions(n int) Option {
	return func(r *Renderer) {
		r.maxSubst = n
	}
}

// WithInputBufferSize sets the buffer size for text input widgets.
func WithInputBufferSize(n int) Option {
	return func(r *Renderer) {
		if n > 1 {
			r.bufSize = n
		}
	}
}

// WithDefaultWindowHeight sets the window height used for windows with a
// width, but no height style.
func WithDefaultWindowHeight(h float64) Option {
	return func(r *Renderer) {
		if h > 0 {
			r.winH = h
		}
	}
}

// FromConfig converts a configuration to renderer options.
func FromConfig(c *config.Config) []Option {
	if c == nil {
		return nil
	}
	return []Option{
		WithRootTag(c.RootTag),
		WithMaxWidgetAge(c.MaxWidgetAge),
		WithMaxSubstitutions(c.MaxSubstitutions),
		WithInputBufferSize(c.InputBufferSize),
		WithDefaultWindowHeight(c.DefaultWindowHeight),
	}
}

// New creates a renderer for a backend.
func New(backend Backend, opts ...Option) (*Renderer, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	r := &Renderer{
		backend:  backend,
		states:   state.NewManager(),
		handlers: make(map[string]func()),
		rootTag:  markup.DefaultRootTag,
		maxSubst: cssom.DefaultSubstitutionLimit,
		bufSize:  256,
		winH:     200,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RegisterHandler registers an event handler. Markup refers to handlers by
// name, e.g. <Button onClick="save">. A handler registered under an existing
// name replaces the previous one.
func (r *Renderer) RegisterHandler(name string, handler func()) {
	r.handlers[name] = handler
}

// State returns the widget state store.
func (r *Renderer) State() *state.Manager {
	return r.states
}

// Frame returns the number of the last frame started.
func (r *Renderer) Frame() uint64 {
	return r.states.Frame()
}

// Render parses a markup document and a stylesheet and renders one frame.
//
// If the stylesheet is malformed, no frame is rendered and the parse error
// is returned. If the markup document is malformed, a window displaying the
// error is rendered instead, and the parse error is returned after the frame
// has completed.
func (r *Renderer) Render(markupText, tssText string) error {
	if r.inFrame {
		return ErrFrameInProgress
	}
	if strings.TrimSpace(markupText) == "" {
		tracer().Infof("render: empty markup document, nothing to render")
		return nil
	}
	sheet, err := tss.ParseWithLimit(tssText, r.maxSubst)
	if err != nil {
		tracer().Errorf("render: %v", err)
		if r.sink != nil {
			r.sink.Log("// Error: " + err.Error())
		}
		return fmt.Errorf("render: stylesheet: %w", err)
	}
	tree, markupErr := markup.ParseWithRoot(markupText, r.rootTag)
	if markupErr != nil {
		tracer().Errorf("render: %v", markupErr)
		tree = markup.ErrorTree(r.rootTag, markupErr)
	}
	if err = r.RenderTree(tree, sheet); err != nil {
		return err
	}
	if markupErr != nil {
		return fmt.Errorf("render: markup: %w", markupErr)
	}
	return nil
}

// RenderTree renders one frame for an element tree. sheet may be nil.
func (r *Renderer) RenderTree(tree *markup.Element, sheet *cssom.Stylesheet) error {
	if r.inFrame {
		return ErrFrameInProgress
	}
	if tree == nil {
		return ErrNilTree
	}
	r.inFrame = true
	defer func() { r.inFrame = false }()
	//
	frame := r.states.BeginFrame()
	var b Backend = r.backend
	if r.sink != nil {
		r.sink.StartFrame(frame)
		b = loggingBackend{b: r.backend, sink: r.sink}
	}
	f := &frameRenderer{
		r:      r,
		b:      b,
		ctx:    r.states.CreateContext(sheet, r.handlers),
		engine: css.NewEngine(sheet, css.MaxSubstitutions(r.maxSubst)),
	}
	f.element(tree, state.Only)
	evicted := r.states.EndFrame()
	if r.sink != nil {
		r.sink.EndFrame(frame)
	}
	tracer().P("frame", frame).Debugf("render: frame complete, %d widget states, %d evicted",
		r.states.Len(), evicted)
	return nil
}

package highlight

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iw2rmb/codepad/internal/log"
)

const (
	DefaultExpiration      = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

type Options struct {
	// Registry supplies the profiles. nil uses the built-in profiles.
	Registry *Registry

	// Expiration is how long a tokenized text stays memoized. 0 uses
	// DefaultExpiration; negative disables the memo.
	Expiration time.Duration
}

// Highlighter tokenizes whole documents and memoizes the span list of each
// (language, text) pair. It is safe for concurrent use.
type Highlighter struct {
	reg  *Registry
	memo *gocache.Cache
}

func New(opt Options) *Highlighter {
	reg := opt.Registry
	if reg == nil {
		reg = NewDefaultRegistry()
	}

	h := &Highlighter{reg: reg}
	switch {
	case opt.Expiration == 0:
		h.memo = gocache.New(DefaultExpiration, DefaultCleanupInterval)
	case opt.Expiration > 0:
		h.memo = gocache.New(opt.Expiration, 2*opt.Expiration)
	}
	return h
}

func (h *Highlighter) Registry() *Registry { return h.reg }

// Tokenize returns the sorted, non-overlapping spans for text in lang. The
// returned slice belongs to the caller.
func (h *Highlighter) Tokenize(text, lang string) []Span {
	if text == "" {
		return nil
	}

	cp := h.reg.resolve(lang)
	if cp == nil {
		log.Warn(log.CatHighlight, "no profile", "lang", lang)
		return nil
	}
	if h.memo == nil {
		return tokenize(cp, text)
	}

	key := cp.Name + "\x00" + strconv.FormatUint(h.reg.generation(), 10) + "\x00" + text
	if v, ok := h.memo.Get(key); ok {
		if spans, ok := v.([]Span); ok {
			return append([]Span(nil), spans...)
		}
		log.Error(log.CatHighlight, "wrong type in memo", "lang", cp.Name)
	}

	spans := tokenize(cp, text)
	h.memo.SetDefault(key, spans)
	return append([]Span(nil), spans...)
}

// Highlight returns text as escaped markup with token spans.
func (h *Highlighter) Highlight(text, lang string) string {
	return Render(text, h.Tokenize(text, lang))
}

// Flush drops every memoized span list.
func (h *Highlighter) Flush() {
	if h.memo != nil {
		h.memo.Flush()
	}
}

var defaultHighlighter = New(Options{})

// Default returns the process-wide highlighter used by the package-level
// functions.
func Default() *Highlighter { return defaultHighlighter }

// Highlight highlights text with the built-in profiles.
func Highlight(text, lang string) string { return defaultHighlighter.Highlight(text, lang) }

// Tokenize tokenizes text with the built-in profiles.
func Tokenize(text, lang string) []Span { return defaultHighlighter.Tokenize(text, lang) }

// Lookup returns the built-in profile for lang, falling back to javascript.
func Lookup(lang string) Profile { return defaultHighlighter.reg.Resolve(lang) }

// Languages lists the built-in profile names.
func Languages() []string { return defaultHighlighter.reg.Languages() }

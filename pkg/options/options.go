package options

// DefaultPunctuation is stripped from both edges of every whitespace-separated chunk.
const DefaultPunctuation = ".,;:!?\"'()[]{}<>«»“”‘’…-–—/\\*_#"

var DefaultOptions = EngineOptions{
	MinTokenLength: 3,
	MaxSuggestions: 3,
	Punctuation:    DefaultPunctuation,
}

type EngineOptions struct {
	MinTokenLength int    // tokens shorter than this (in runes) are never flagged
	MaxSuggestions int    // suggestion lists are truncated to this many entries
	Punctuation    string // characters stripped from token edges
}

type Options interface {
	Apply(options *EngineOptions)
}

type FuncConfig struct {
	ops func(options *EngineOptions)
}

func (w FuncConfig) Apply(conf *EngineOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *EngineOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) EngineOptions {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(&o)
		}
	}
	return o
}

func WithMinTokenLength(n int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		if n > 0 {
			options.MinTokenLength = n
		}
	})
}

func WithMaxSuggestions(n int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		if n > 0 {
			options.MaxSuggestions = n
		}
	})
}

func WithPunctuation(chars string) Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.Punctuation = chars
	})
}

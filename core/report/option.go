package report

import "github.com/goto/folio/domain"

type options struct {
	summary  bool
	language *domain.Language
	vars     map[string]string
}

type Option func(*options)

// Summary leaves data rows out of the result, only function rows are
// kept.
func Summary() Option {
	return func(opts *options) {
		opts.summary = true
	}
}

// WithLanguage renders lookups in the given language instead of the
// configured one.
func WithLanguage(lang domain.Language) Option {
	return func(opts *options) {
		opts.language = &lang
	}
}

// WithContextVars sets the values substituted for @Name@ variables in
// virtual columns, formulas and report view restrictions.
func WithContextVars(vars map[string]string) Option {
	return func(opts *options) {
		if opts.vars == nil {
			opts.vars = map[string]string{}
		}
		for k, v := range vars {
			opts.vars[k] = v
		}
	}
}

func (s *Service) getOptions(opts ...Option) options {
	o := options{vars: map[string]string{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

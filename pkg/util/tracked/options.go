// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

// Option configures a tracked container at construction time.
type Option interface {
	apply(*options)
}

type options struct {
	depth    int
	site     Site
	hasSite  bool
	reporter Reporter
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithDepth attributes the creation site to a caller depth frames above
// the direct caller of the constructor. Helpers that construct containers
// on behalf of their own caller pass WithDepth(1).
func WithDepth(depth int) Option {
	return optionFunc(func(o *options) {
		o.depth += depth
	})
}

// WithSite uses site as the creation site instead of capturing one.
func WithSite(site Site) Option {
	return optionFunc(func(o *options) {
		o.site = site
		o.hasSite = true
	})
}

// WithReporter routes the container's Records to r instead of the
// default Reporter.
func WithReporter(r Reporter) Option {
	return optionFunc(func(o *options) {
		o.reporter = r
	})
}

// buildOptions applies opts and resolves the creation site. depth counts
// frames above buildOptions' caller: an exported constructor passes 1 to
// attribute the site to its own caller.
func buildOptions(depth int, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}
	if !o.hasSite {
		o.site = CallerSite(depth + 1 + o.depth)
	}
	return o
}

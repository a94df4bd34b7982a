// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package caller

import (
	"regexp"
	"runtime"
	"strings"

	"github.com/cockroachdb/tracked/pkg/util/syncutil"
)

type cachedLookup struct {
	file string
	line int
	fun  string
}

var dummyLookup = &cachedLookup{file: "???", line: 1, fun: "???"}

// A CallResolver is a helping hand around runtime.Caller() which trims
// the file path according to a pattern and caches results keyed by
// program counter.
type CallResolver struct {
	mu    syncutil.Mutex
	cache map[uintptr]*cachedLookup
	re    *regexp.Regexp
}

// defaultRE strips everything up to and including the last "pkg/"
// directory of a source path, so that /src/repo/pkg/util/x/x.go turns
// into util/x/x.go. Paths without a pkg/ directory are left alone.
var defaultRE = regexp.MustCompile(`^.*/pkg/(.+)$`)

var defaultCallResolver = NewCallResolver(defaultRE)

// strippedPrefixes are removed from fully-qualified function names to
// keep package paths short in reports.
var strippedPrefixes = []string{
	"github.com/cockroachdb/tracked/pkg/",
	"github.com/cockroachdb/",
}

// Lookup returns the (reduced) file, line and function of the caller at
// the requested depth, using a default call resolver which drops the
// path of the source tree. The function name is local to its package,
// for example "(*Vector[...]).Clone" or "trackOnClear".
func Lookup(depth int) (file string, line int, fun string) {
	return defaultCallResolver.Lookup(depth + 1)
}

// NewCallResolver returns a CallResolver. The supplied pattern must
// specify a valid regular expression containing a single capturing
// group. Source paths matching the pattern are replaced by that group.
// A nil pattern leaves paths unmodified.
func NewCallResolver(re *regexp.Regexp) *CallResolver {
	return &CallResolver{
		cache: map[uintptr]*cachedLookup{},
		re:    re,
	}
}

// Lookup returns the (reduced) file, line and function of the caller at
// the requested depth. The results are cached.
func (cr *CallResolver) Lookup(depth int) (file string, line int, fun string) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok || cr == nil {
		return dummyLookup.file, dummyLookup.line, dummyLookup.fun
	}
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if v, okCache := cr.cache[pc]; okCache {
		return v.file, v.line, v.fun
	}
	if cr.re != nil {
		if matches := cr.re.FindStringSubmatch(file); matches != nil {
			file = matches[1]
		}
	}
	fun = dummyLookup.fun
	if f := runtime.FuncForPC(pc); f != nil {
		_, fun = parseFQFun(f.Name())
	}
	cr.cache[pc] = &cachedLookup{file: file, line: line, fun: fun}
	return file, line, fun
}

// parseFQFun splits a fully-qualified function name as reported by the
// runtime into its package path and its package-local name.
func parseFQFun(fqFun string) (pkg string, fun string) {
	// The package path ends at the first dot following the last slash.
	// Method receivers may contain dots only after that point.
	lastSlash := strings.LastIndexByte(fqFun, '/')
	if dot := strings.IndexByte(fqFun[lastSlash+1:], '.'); dot != -1 {
		pkg, fun = fqFun[:lastSlash+1+dot], fqFun[lastSlash+1+dot+1:]
	} else {
		pkg, fun = "", fqFun
	}
	for _, prefix := range strippedPrefixes {
		if strings.HasPrefix(pkg, prefix) {
			pkg = pkg[len(prefix):]
			break
		}
	}
	return pkg, fun
}

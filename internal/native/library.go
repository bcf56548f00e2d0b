package native

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

// Library is an open shared library.
type Library struct {
	// Name is the logical name the library was requested under (e.g. "glfw").
	Name string
	// Path is the candidate that dlopen accepted.
	Path string

	mu     sync.Mutex
	handle uintptr
	closed bool
}

// Open tries each candidate in order and returns the first library that loads.
func Open(name string, candidates []string) (*Library, error) {
	if len(candidates) == 0 {
		return nil, errs.New(errs.ErrCodeUnsupportedOS,
			fmt.Sprintf("no %s library candidates for this platform", name), nil)
	}

	var failures []string
	var lastErr error
	for _, path := range candidates {
		handle, err := openLibrary(path)
		if err != nil {
			failures = append(failures, path)
			lastErr = err
			continue
		}
		return &Library{Name: name, Path: path, handle: handle}, nil
	}

	return nil, errs.LibraryError(fmt.Sprintf("%s library not found", name), lastErr).
		WithDetail("candidates", strings.Join(failures, ","))
}

// Symbol returns the address of an exported symbol.
func (l *Library) Symbol(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, errs.InternalError(fmt.Sprintf("%s: library already closed", l.Name), nil)
	}

	addr, err := lookupSymbol(l.handle, name)
	if err != nil || addr == 0 {
		return 0, errs.New(errs.ErrCodeSymbolNotFound,
			fmt.Sprintf("%s: symbol %s not found", l.Name, name), err).
			WithDetail("path", l.Path)
	}
	return addr, nil
}

// Bind resolves a symbol and binds it to the function pointed to by fptr.
// Unlike purego.RegisterLibFunc a missing symbol is an error, not a panic.
func (l *Library) Bind(fptr any, name string) error {
	addr, err := l.Symbol(name)
	if err != nil {
		return err
	}
	bindFunc(fptr, addr)
	return nil
}

// Close releases the handle. Calling Close more than once is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return closeLibrary(l.handle)
}

// Closed reports whether Close has been called.
func (l *Library) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Registry is a bounded cache of open libraries keyed by logical name.
// Evicted libraries are closed.
type Registry struct {
	cache  *lru.Cache[string, *Library]
	logger *slog.Logger
}

// NewRegistry creates a registry holding at most size libraries.
func NewRegistry(size int, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{logger: logger}

	cache, err := lru.NewWithEvict(size, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("failed to create library registry: %w", err)
	}
	r.cache = cache
	return r, nil
}

func (r *Registry) onEvict(name string, lib *Library) {
	if err := lib.Close(); err != nil {
		r.logger.Warn("Failed to close library",
			slog.String("library", name),
			slog.String("path", lib.Path),
			slog.String("error", err.Error()))
		return
	}
	r.logger.Debug("Library closed", slog.String("library", name))
}

// Load returns the cached library for name, opening it from candidates on
// first use.
func (r *Registry) Load(name string, candidates []string) (*Library, error) {
	if lib, ok := r.cache.Get(name); ok {
		return lib, nil
	}

	lib, err := Open(name, candidates)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Library loaded",
		slog.String("library", name),
		slog.String("path", lib.Path))

	r.cache.Add(name, lib)
	return lib, nil
}

// Len returns the number of open libraries.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close closes every cached library.
func (r *Registry) Close() {
	r.cache.Purge()
}

package glcontext

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

// Options configures the window and context request.
type Options struct {
	Title        string
	Width        int32
	Height       int32
	ContextMajor int32
	ContextMinor int32
	CoreProfile  bool
	ClearColor   [4]float32
	WaitTimeout  time.Duration
}

// DefaultOptions requests a 640x480 window with a 3.3 core context.
func DefaultOptions() Options {
	return Options{
		Title:        "GLFW/GL Test",
		Width:        640,
		Height:       480,
		ContextMajor: 3,
		ContextMinor: 3,
		CoreProfile:  true,
		ClearColor:   [4]float32{0.2, 0.3, 0.4, 1.0},
		WaitTimeout:  500 * time.Millisecond,
	}
}

// Session owns the initialized global state of a context library.
type Session struct {
	lib  Library
	once sync.Once
}

// Init initializes lib. On failure nothing is left to release.
func Init(lib Library) (*Session, error) {
	if !lib.Init() {
		return nil, errs.New(errs.ErrCodeInitFailed, "Failed to initialize GLFW", nil).
			WithDetail("reason", lib.LastError())
	}
	return &Session{lib: lib}, nil
}

// Close terminates the library. Only the first call has an effect.
func (s *Session) Close() {
	s.once.Do(s.lib.Terminate)
}

// Report describes the context that was created.
type Report struct {
	Version  string
	Renderer string
	Vendor   string
}

// Renderer creates windows and draws a frame with a context library.
type Renderer struct {
	lib    Library
	loader Loader
	logger *slog.Logger
}

// NewRenderer returns a Renderer over lib. A nil loader uses LoadGL.
func NewRenderer(lib Library, loader Loader, logger *slog.Logger) *Renderer {
	if loader == nil {
		loader = LoadGL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{lib: lib, loader: loader, logger: logger}
}

// Run initializes the library, opens a window, loads GL, clears and
// presents one frame, then pumps events for at most opts.WaitTimeout.
// The library is terminated before Run returns whenever Init succeeded.
func (r *Renderer) Run(ctx context.Context, opts Options) (Report, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ctx.Err(); err != nil {
		return Report{}, errs.New(errs.ErrCodeCancelled, "graphics check cancelled", err)
	}

	s, err := Init(r.lib)
	if err != nil {
		return Report{}, err
	}
	defer s.Close()

	r.lib.WindowHint(HintVisible, True)
	r.lib.WindowHint(HintContextVersionMajor, opts.ContextMajor)
	r.lib.WindowHint(HintContextVersionMinor, opts.ContextMinor)
	if opts.CoreProfile {
		r.lib.WindowHint(HintOpenGLProfile, ProfileCore)
		if runtime.GOOS == "darwin" {
			r.lib.WindowHint(HintOpenGLForwardCompat, True)
		}
	}

	win := r.lib.CreateWindow(opts.Width, opts.Height, opts.Title)
	if win == 0 {
		return Report{}, errs.New(errs.ErrCodeWindowFailed, "Failed to create GLFW window", nil).
			WithDetail("reason", r.lib.LastError())
	}
	defer r.lib.DestroyWindow(win)

	r.lib.MakeContextCurrent(win)

	gl, err := r.loader(r.lib.GetProcAddress)
	if err != nil {
		return Report{}, errs.New(errs.ErrCodeLoaderFailed, "Failed to load OpenGL functions", err)
	}

	rep := Report{
		Version:  gl.GetString(GLVersion),
		Renderer: gl.GetString(GLRenderer),
		Vendor:   gl.GetString(GLVendor),
	}
	if rep.Version == "" {
		return rep, errs.New(errs.ErrCodeDriverQuery, "driver returned no version string", nil)
	}
	r.logger.Debug("OpenGL context created",
		slog.String("version", rep.Version),
		slog.String("renderer", rep.Renderer),
		slog.String("vendor", rep.Vendor))

	c := opts.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(GLColorBufferBit)
	if code := gl.GetError(); code != GLNoError {
		return rep, errs.New(errs.ErrCodeCallFailed, "glClear reported an error", nil).
			WithDetail("gl_error", fmt.Sprintf("0x%04X", code))
	}
	r.lib.SwapBuffers(win)

	r.lib.PollEvents()
	r.lib.WaitEventsTimeout(opts.WaitTimeout)

	return rep, nil
}

// Package glcontext creates a window with an OpenGL context, loads GL
// entry points through the context library and draws a single frame.
//
// The context library's global state is owned by a Session. Terminate is
// called exactly once per successful Init, on every exit path.
package glcontext

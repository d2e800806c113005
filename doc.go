/*
Package gapi is a thin graphics API abstraction layer. It declares the objects a
renderer needs (context, vertex and index buffers, vertex arrays, shaders,
textures) as interfaces, so the renderer can be written once and backed by
whichever native graphics library is available.

The package itself owns only two pieces of logic: BufferLayout, which computes
attribute offsets and the stride of interleaved vertex data, and
PreprocessShader, which splits a single GLSL file into stages using "#type"
directives:

	#type vertex
	#version 410 core
	...
	#type fragment
	#version 410 core
	...

Everything else is forwarded to a backend. The OpenGL backend lives in the
opengl subpackage.

All objects created by a backend are bound to the thread that owns the
context. Callers must lock that goroutine to its OS thread with
runtime.LockOSThread.
*/
package gapi

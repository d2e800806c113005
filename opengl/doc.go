// Package opengl implements the gapi interfaces on top of OpenGL 4.1 core
// using go-gl and GLFW.
//
// A typical setup:
//
//	opengl.ContextHints(4, 1)
//	window, _ := glfw.CreateWindow(800, 600, "gapi", nil, nil)
//	ctx := opengl.NewContext(window)
//	if err := ctx.Init(); err != nil { ... }
//	api := opengl.NewAPI(opengl.Options{DepthTest: true})
//	renderer, err := gapi.NewRenderer(api)
package opengl

package main

import (
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/HobyProjects/gapi"
)

type World struct {
	ScreenSize g.Vec2
	Camera     Camera

	DiffuseLightPosition g.Vec3

	Time      float64
	DeltaTime float32
}

func NewWorld() *World {
	world := &World{}
	world.Camera = *NewCamera()
	world.DiffuseLightPosition = g.V3(10, 10, 10)
	world.Time = 0
	return world
}

func (world *World) NextFrameGLFW(window *glfw.Window, renderer *gapi.Renderer) {
	width, height := window.GetFramebufferSize()
	screenSize := g.V2(float32(width), float32(height))
	now := glfw.GetTime()

	if world.ScreenSize != screenSize {
		renderer.Viewport(0, 0, int32(width), int32(height))
	}
	world.NextFrame(screenSize, now)
}

func (world *World) NextFrame(screenSize g.Vec2, now float64) {
	if world.ScreenSize != screenSize {
		log.Println(screenSize, screenSize.X/screenSize.Y)
	}
	world.ScreenSize = screenSize
	world.DeltaTime = float32(now - world.Time)
	world.Time = now

	world.Camera.UpdateScreenSize(screenSize)
}

type Camera struct {
	Eye, LookAt, Up g.Vec3

	FOV       float32
	Near, Far float32

	Projection g.Mat4
	Camera     g.Mat4
}

func NewCamera() *Camera {
	return &Camera{
		Eye:    g.V3(0, 2, 8),
		LookAt: g.V3(0, 0, 0),
		Up:     g.V3(0, 1, 0),
		FOV:    70,
		Near:   0.1,
		Far:    100,
	}
}

func (camera *Camera) UpdateScreenSize(size g.Vec2) {
	if size.Y <= 0 {
		return
	}
	camera.Projection = g.Perspective(g.DegToRad(camera.FOV), size.X/size.Y, camera.Near, camera.Far)
	camera.Camera = g.LookAtV(camera.Eye, camera.LookAt, camera.Up)
}

package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core"
	"log"
)

const renderWidth = 1080
const renderHeight = 960

type GPUTrasherApplication struct {
	window *sdl.Window
	loader core.Loader
}

func (app *GPUTrasherApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.mainLoop()
}

func (app *GPUTrasherApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	window, err := sdl.CreateWindow("GPU Trasher", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, renderWidth, renderHeight, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return err
	}
	app.window = window

	app.loader, err = core.CreateLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	return nil
}

func (app *GPUTrasherApplication) mainLoop() error {
appLoop:
	for true {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			}
		}
	}

	return nil
}

func (app *GPUTrasherApplication) cleanup() {
	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	app := &GPUTrasherApplication{}

	err := app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

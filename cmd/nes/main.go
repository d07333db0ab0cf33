package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/goretro/nes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

const zoom = 3

func init() {
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <rom.nes> [--trace]\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open rom: %s\n", err)
		os.Exit(1)
	}

	rom, err := nes.LoadINES(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var trace io.Writer
	if len(os.Args) > 2 && os.Args[2] == "--trace" {
		trace = os.Stdout
	}

	engine, err := nes.New(rom, trace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(engine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(engine *nes.Engine) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"nes",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		nes.FrameWidth*zoom, nes.FrameHeight*zoom,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return fmt.Errorf("unable to create window: %s", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("unable to create renderer: %s", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		nes.FrameWidth, nes.FrameHeight,
	)
	if err != nil {
		return fmt.Errorf("unable to create texture: %s", err)
	}
	defer texture.Destroy()

	pixels := make([]byte, nes.FrameWidth*nes.FrameHeight*3)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	paused := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch evt := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if evt.Type != sdl.KEYUP {
					continue
				}
				switch evt.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_SPACE:
					paused = !paused
				case sdl.K_r:
					engine.Reset()
				}
			}
		}

		<-ticker.C
		if !paused {
			if err := engine.StepFrame(); err != nil {
				return err
			}
		}

		engine.Frame().WriteRGB(pixels)
		if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), nes.FrameWidth*3); err != nil {
			return err
		}
		if err := renderer.Copy(texture, nil, nil); err != nil {
			return err
		}
		renderer.Present()
	}
}

// This file is part of GoCDG.
//
// GoCDG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCDG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCDG.  If not, see <https://www.gnu.org/licenses/>.

package play

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/curated"
)

const pixelDepth = 4

// screen wraps the SDL plumbing needed to get frames on the display.
type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before
	// applying it to the renderer
	pixels []byte
}

// newScreen is the preferred method of initialisation for the screen
// type. The caller is responsible for calling destroy().
func newScreen(title string, scale float32) (*screen, error) {
	scr := &screen{}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(cdg.DisplayWidth)*scale), int32(float32(cdg.DisplayHeight)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// texture is the same size as the frame. the renderer scales it to
	// fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		cdg.DisplayWidth, cdg.DisplayHeight)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scr.pixels = make([]byte, cdg.DisplayWidth*cdg.DisplayHeight*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	return scr, nil
}

// setFrame copies a frame into the pixel array ready for the next
// present().
func (scr *screen) setFrame(frm *cdg.Frame) {
	rgb := frm.RGB()

	for i := 0; i < len(rgb)/3; i++ {
		scr.pixels[i*pixelDepth] = rgb[i*3]
		scr.pixels[i*pixelDepth+1] = rgb[i*3+1]
		scr.pixels[i*pixelDepth+2] = rgb[i*3+2]
	}
}

// present pushes the pixel array to the display.
func (scr *screen) present() error {
	err := scr.texture.Update(nil, scr.pixels, cdg.DisplayWidth*pixelDepth)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	scr.renderer.Present()

	return nil
}

func (scr *screen) destroy() {
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// This file is part of Bensim.
//
// Bensim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bensim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bensim.  If not, see <https://www.gnu.org/licenses/>.

package sdllcd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/hardware/peripherals/lcd"
	"github.com/sixfiveohtwo/bensim/logger"
	"github.com/sixfiveohtwo/bensim/userinput"
	"github.com/sixfiveohtwo/bensim/version"
)

// SDLError is the pattern for all errors from the package.
const SDLError = "sdl: %v"

// DefaultScale of the window.
const DefaultScale = 4

// pixel depth of the texture.
const depth = 4

// Window is an SDL window showing the LCD.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// frame is written by PresentLCD() and read by Service()
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	events chan<- userinput.Event
}

// NewWindow is the preferred method of initialisation for the Window type.
// Events are sent to the events channel, which may be nil.
//
// Must be called from the main thread.
func NewWindow(scale int32, events chan<- userinput.Event) (*Window, error) {
	win := &Window{
		pixels: make([]byte, lcd.ImageWidth*lcd.ImageHeight*depth),
		events: events,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// mouse motion is of no interest
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	win.window, err = sdl.CreateWindow(version.String(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(lcd.ImageWidth)*scale, int32(lcd.ImageHeight)*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		win.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	// nearest neighbour scaling keeps the pixels of the LCD sharp
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	err = win.renderer.SetLogicalSize(int32(lcd.ImageWidth), int32(lcd.ImageHeight))
	if err != nil {
		logger.Logf(logger.Allow, "sdllcd", "%v", err)
	}

	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(lcd.ImageWidth), int32(lcd.ImageHeight))
	if err != nil {
		win.renderer.Destroy()
		win.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	sdl.StartTextInput()

	win.renderer.SetDrawColor(lcd.BackgroundColor.R, lcd.BackgroundColor.G, lcd.BackgroundColor.B, 255)
	win.renderer.Clear()
	win.renderer.Present()

	return win, nil
}

// Destroy the window. Errors are written to output. Must be called from the
// main thread.
func (win *Window) Destroy(output io.Writer) {
	sdl.StopTextInput()
	if err := win.texture.Destroy(); err != nil {
		io.WriteString(output, fmt.Sprintf("* sdl: %v\n", err))
	}
	if err := win.renderer.Destroy(); err != nil {
		io.WriteString(output, fmt.Sprintf("* sdl: %v\n", err))
	}
	if err := win.window.Destroy(); err != nil {
		io.WriteString(output, fmt.Sprintf("* sdl: %v\n", err))
	}
	sdl.Quit()
}

// PresentLCD implements the lcd.Output interface.
func (win *Window) PresentLCD(f lcd.Frame) error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if f.Image != nil {
		copy(win.pixels, f.Image.Pix)
	}
	win.dirty = true

	return nil
}

// Service the window. Pending events are forwarded and the most recently
// presented frame is drawn. Must be called from the main thread.
func (win *Window) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				break // switch
			}
			if kev, ok := keyboardEvent(ev); ok {
				win.send(kev)
			}

		case *sdl.TextInputEvent:
			for _, r := range strings.TrimRight(string(ev.Text[:]), "\x00") {
				win.send(userinput.EventKeyboard{Char: r, Down: true})
			}
		}
	}

	if err := win.draw(); err != nil {
		logger.Log(logger.Allow, "sdllcd", err)
	}
}

func (win *Window) draw() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if !win.dirty {
		return nil
	}
	win.dirty = false

	pixels, _, err := win.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	copy(pixels, win.pixels)
	win.texture.Unlock()

	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	win.renderer.Present()

	return nil
}

// send event without blocking. events are dropped if the channel is full.
func (win *Window) send(ev userinput.Event) {
	if win.events == nil {
		return
	}
	select {
	case win.events <- ev:
	default:
		logger.Log(logger.Allow, "sdllcd", "dropped input event")
	}
}

// This file is part of Mact.
//
// Mact is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mact is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mact.  If not, see <https://www.gnu.org/licenses/>.


package sdlplatform

import (
	"fmt"

	"github.com/jetsetilly/mact/logger"
	"github.com/jetsetilly/mact/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "mact"

// Platform implements the userinput.Platform interface.
type Platform struct {
	window *sdl.Window
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	return &Platform{}
}

// Startup implements the userinput.Platform interface.
func (plt *Platform) Startup() error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		320, 200,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	sdl.SetRelativeMouseMode(true)

	return nil
}

// Shutdown implements the userinput.Platform interface.
func (plt *Platform) Shutdown() {
	sdl.SetRelativeMouseMode(false)
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}

// MousePresent implements the userinput.Platform interface.
func (plt *Platform) MousePresent() bool {
	return sdl.GetRelativeMouseMode()
}

// Service implements the userinput.Platform interface.
func (plt *Platform) Service(push func(userinput.Event)) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			push(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			push(userinput.EventKeyboard{
				Key:    int(ev.Keysym.Scancode),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})

		case *sdl.MouseMotionEvent:
			push(userinput.EventMouseMotion{
				X: ev.XRel,
				Y: ev.YRel,
			})

		case *sdl.MouseButtonEvent:
			button := userinput.MouseButtonNone
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				button = userinput.MouseButtonLeft
			case sdl.BUTTON_RIGHT:
				button = userinput.MouseButtonRight
			case sdl.BUTTON_MIDDLE:
				button = userinput.MouseButtonMiddle
			case sdl.BUTTON_X1:
				button = userinput.MouseButtonThumb
			}

			if button != userinput.MouseButtonNone {
				push(userinput.EventMouseButton{
					Button: button,
					Down:   ev.State == sdl.PRESSED,
				})
			}

		case *sdl.MouseWheelEvent:
			if ev.Y != 0 {
				push(userinput.EventMouseWheel{Delta: ev.Y})
			}

		case *sdl.JoyDeviceAddedEvent:
			push(userinput.EventDevice{Added: true})

		case *sdl.JoyDeviceRemovedEvent:
			push(userinput.EventDevice{Added: false})
		}
	}
}

// OpenJoystick implements the userinput.Platform interface. Devices that SDL
// has a game controller mapping for are opened as game controllers.
func (plt *Platform) OpenJoystick() userinput.Joystick {
	for i := range sdl.NumJoysticks() {
		if sdl.IsGameController(i) {
			pad := sdl.GameControllerOpen(i)
			if pad != nil && pad.Attached() {
				return &gameController{pad: pad}
			}
			logger.Logf(logger.Allow, "sdl", "failed to open game controller %d", i)
			continue // for loop
		}

		joy := sdl.JoystickOpen(i)
		if joy != nil {
			return &joystick{joy: joy}
		}
		logger.Logf(logger.Allow, "sdl", "failed to open joystick %d", i)
	}

	return nil
}

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


// Package recorder records the raw input seen by the control package to a
// transcript and plays the transcript back.
//
// The Recorder type wraps a control.Source and writes the state of every
// device after each call to PollEvents(). The Playback type implements the
// control.Source interface by reading the transcript one frame at a time. The
// clock of each frame is recorded too, and the Timer() function of the
// Playback type should be given to control.Startup() so that double clicks
// and the repeat of menu directions happen on the same frames as they did
// when the transcript was recorded.
//
// For the clock to be reproduced the timer given to control.Startup() when
// recording must not change during a frame. The recorder samples the timer
// once, when PollEvents() is called.
package recorder

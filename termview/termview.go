// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview is an interactive terminal inspector for a
// [trackball.Trackball]: dragging with the primary mouse button
// rotates, and the rotation matrix and drag state are drawn as text.
// Each terminal cell counts as one pixel of the viewport.
package termview

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/trackball/trackball"
	"github.com/gdamore/tcell/v2"
)

// Help is the key help line drawn at the bottom of the screen.
const Help = "drag: rotate   r: reset   q: quit"

// View draws a trackball on a terminal screen and feeds it mouse events.
type View struct {

	// Screen is the initialized screen to draw on.
	Screen tcell.Screen

	// Trackball is the trackball being inspected.
	Trackball *trackball.Trackball

	// Style is the style of all text.
	Style tcell.Style

	// err is the last error from the trackball, shown until the next sample.
	err error
}

// New returns a new [View] of the given trackball on the given screen.
func New(s tcell.Screen, tb *trackball.Trackball) *View {
	return &View{Screen: s, Trackball: tb, Style: tcell.StyleDefault}
}

// Run enables the mouse and handles events until the user quits
// or the screen is finalized. The screen must already be initialized.
func (v *View) Run() error {
	v.Screen.EnableMouse()
	defer v.Screen.DisableMouse()
	v.Draw()
	for {
		ev := v.Screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
		v.Draw()
	}
}

// HandleEvent applies the given event, returning true when the
// user asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'r', 'R':
				v.Trackball.Reset()
				v.err = nil
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		w, h := v.Screen.Size()
		held := ev.Buttons()&tcell.Button1 != 0
		v.err = v.Trackball.PointerSample(held, x, y, w, h)
		if v.err != nil {
			slog.Warn("termview sample", "err", v.err)
		}
	case *tcell.EventResize:
		v.Screen.Sync()
	}
	return false
}

// Lines returns the text lines describing the trackball.
func (v *View) Lines() []string {
	tb := v.Trackball
	lines := []string{
		fmt.Sprintf("state: %v  updates: %d", tb.State(), tb.Updates()),
		fmt.Sprintf("cos: %.5f  axis: %v", tb.CosAngle(), tb.Axis()),
		"",
	}
	lines = append(lines, strings.Split(tb.Rotation().String(), "\n")...)
	if v.err != nil {
		lines = append(lines, "", "error: "+v.err.Error())
	}
	return lines
}

// Draw redraws the whole screen.
func (v *View) Draw() {
	s := v.Screen
	s.Clear()
	for i, ln := range v.Lines() {
		drawText(s, 1, 1+i, v.Style, ln)
	}
	_, h := s.Size()
	drawText(s, 1, h-1, v.Style.Dim(true), Help)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

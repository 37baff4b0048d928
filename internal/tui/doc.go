// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the notes board.
//
// [Presenter] is the display surface a board session drives; it forwards
// every call to the running Bubble Tea program as a message. [Model] renders
// the login or post form, the notes list and alerts, and turns key presses
// into session commands through a [Controller].
package tui

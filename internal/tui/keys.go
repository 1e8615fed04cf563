// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// The code input is always focused, so shortcuts use control keys.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	tab   key.Binding
	copy  key.Binding
	info  key.Binding
	quit  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up")),
	down:  key.NewBinding(key.WithKeys("down")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab")),
	copy:  key.NewBinding(key.WithKeys("ctrl+y")),
	info:  key.NewBinding(key.WithKeys("ctrl+b")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
}

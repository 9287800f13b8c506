// Package tui is the interactive pathviz front end built on bubbletea.
//
// A Model wraps a controller.Session. Animation timers armed by the
// scheduler are turned into tea.Tick commands by Host and fired back
// inside Update, so every step runs on the bubbletea event loop.
package tui

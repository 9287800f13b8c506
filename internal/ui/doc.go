// Package ui holds the terminal output helpers shared by the pathviz
// commands: a color palette, aligned tables and a grid renderer that draws
// visited and shortest-path reveals over the terrain.
package ui

// Package widget is the small terminal widget layer that hosts context menus.
//
// Widgets are values rebuilt on every render pass. A pass lays the tree out
// into Nodes, draws it onto a Canvas, routes input Events through Update and
// collects any overlay a widget wants to float above the tree. Messages
// produced while handling input are published on a Shell and handed back to
// bubbletea as commands, so they only take effect on a later pass.
package widget

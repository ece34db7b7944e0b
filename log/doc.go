// Package log provides the leveled logging used across the toolkit.
//
// Packages log through the Logger interface; the package-level default
// can be swapped with SetDefaultLogger so applications route everything
// to their own sink. DefaultLogger writes to stderr through the standard
// library, GologLogger adapts kataras/golog for colored leveled output,
// and NoOpLogger silences a component entirely.
package log

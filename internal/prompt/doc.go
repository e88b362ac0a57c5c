// Package prompt collects generator answers on a line-oriented terminal.
// Questions show their default in parentheses, and the module type is chosen
// from a numbered menu.
package prompt

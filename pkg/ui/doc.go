// Package ui holds output format selection shared by the pathglob
// command and its renderers.
package ui

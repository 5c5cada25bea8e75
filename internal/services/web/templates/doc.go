// Package templates holds the templ components of the site shell.
//
// Components are plain templ.ComponentFunc values. Every page renders
// inside Layout, which always carries the header.
package templates

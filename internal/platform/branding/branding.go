// Package branding holds product naming shared by page chrome.
package branding

// AppName is the product name shown in titles and the header logo.
const AppName = "Showcase"

// ProjectName labels the featured card in the getting-started dropdown.
const ProjectName = "Your Project Name"

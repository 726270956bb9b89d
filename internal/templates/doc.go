// Package templates is the template store: the closed set of template names
// the CLI offers, and the directory trees backing them. The trees ship inside
// the binary; a directory on disk can replace them through the templates_dir
// setting.
package templates

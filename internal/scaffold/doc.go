// Package scaffold turns a human-readable project name into a generated
// project. It derives the project slug, assembles the substitution context,
// checks that the destination is free, and hands rendering to an
// engine.Renderer. It powers the "phoenix-kits init" command.
package scaffold

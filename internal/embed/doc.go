// Package embed resolves Embed-Dependency directives into bundle headers.
//
// A pass has two stages:
//
//  1. Resolve runs every clause of the directive as a filter chain over a
//     fresh copy of the dependency set and classifies the survivors as
//     inlined or embedded. Inline always wins over embed.
//  2. An Emitter computes the placement of each classified dependency and
//     appends Bundle-ClassPath and Include-Resource entries. All inlined
//     dependencies are emitted before any embedded one.
//
// Process runs both stages. Nothing is shared between calls; the only
// I/O is an existence check on each source file.
package embed

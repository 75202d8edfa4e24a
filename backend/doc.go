// Package backend defines the ProgramBackend capability — the abstraction
// boundary between the graph engine (package core and its consumers) and
// whatever substrate actually decodes a genome into something that can bid
// on an input.
//
// core deliberately has no dependency on this package (it talks to clones
// through the small duck-typed core.GenomeCloner interface instead); backend
// is the side the evolutionary harness and evaluator import.
//
// StackBackend is a reference implementation of ProgramBackend: genomes are
// stack-machine programs over a small arithmetic instruction set, which
// is enough to express the reference bidders used throughout this module's
// scenario tests (A = x1*x2/x3, B = x1/x2*x3, C = x1*x2).
package backend

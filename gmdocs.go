// Package gmdocs converts the GameMaker reference manual, a tree of
// loosely authored HTML pages, into a structured document of functions,
// variables and constants.
//
// This package contains domain types, the pure extraction heuristics and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, fs/).
package gmdocs

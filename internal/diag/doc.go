// Package diag provides the diagnostics reported while deriving partial types.
//
// Problems are collected per resolution scope (the struct, or one field) and
// surfaced together, so a single run reports every bad option at once.
package diag

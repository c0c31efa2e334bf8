// Package value defines the typed values exchanged with a file handle's
// property table and INI store.
//
// A Value is one of undefined, bool, integer, float, string, string list,
// integer list or time. Values read from text without a caller-supplied
// type are classified with Infer; arbitrary Go values are converted with Of.
package value

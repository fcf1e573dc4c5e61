// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the flags of csranalyze and csrconvert into their run settings.
package cli

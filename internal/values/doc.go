// Package values handles parsing and validation of makegen values files. A
// values file supplies the six Makefile placeholders and may pin the makegen
// version it was written for. Files are validated against an embedded JSON
// Schema before use.
package values

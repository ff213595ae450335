// Package scaffold writes a starter Makefile template and values file for
// "makegen init".
package scaffold

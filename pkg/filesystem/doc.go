// Package filesystem provides filesystem implementations for roo-conf.
//
// This package contains implementations of the types.FS interface: the
// OS filesystem, whose writes are atomic on unix, and an afero-backed
// filesystem used with afero.MemMapFs in tests.
package filesystem

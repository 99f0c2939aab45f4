// Package filesystem provides the afero-backed file operations valk's
// writers share: the OS and in-memory filesystems, single-level directory
// creation, and an all-or-nothing file that only appears once committed.
package filesystem

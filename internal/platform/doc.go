// Package platform provides cross-platform filesystem operations used when
// writing generated projects. On Unix systems permission bits from the
// template are applied exactly, independent of the process umask. On Windows
// permission changes are skipped.
package platform

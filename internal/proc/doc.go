// Package proc launches and terminates the supervised child process.
//
// Descendant termination is platform-dependent. On Linux the direct
// children and grandchildren of a pid are enumerated through procfs and
// signalled individually, deepest first. On macOS enumeration is delegated
// to pkill. Elsewhere descendant termination is a no-op: the direct child
// is still signalled by the caller, but grandchildren of a supervised
// program may outlive it. This is a documented limitation, not an error.
package proc

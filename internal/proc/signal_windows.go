//go:build windows

package proc

// Windows has no graceful termination signal for an arbitrary process, so
// both paths fall through to Kill.
func (c *Child) signal(force bool) error {
	return ignoreExited(c.proc.Kill())
}

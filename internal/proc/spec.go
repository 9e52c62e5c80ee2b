package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrUnreloadable reports an invocation context that cannot be reproduced
// for a relaunch. It is fatal: no child is ever started and the condition
// is never retried.
var ErrUnreloadable = errors.New("invocation cannot be relaunched")

// Spec is the frozen command line used for every (re)launch of the child.
// It is computed once at supervisor startup so that each relaunch is
// identical apart from the injected supervision marker.
type Spec struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// SelfSpec reconstructs the supervisor's own invocation. The executable is
// taken from the running binary rather than argv[0] so that a relative
// invocation resolves identically across restarts.
func SelfSpec() (Spec, error) {
	return specFor(os.Args, os.Executable)
}

func specFor(argv []string, executable func() (string, error)) (Spec, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Spec{}, fmt.Errorf("%w: empty argv[0]", ErrUnreloadable)
	}

	path, err := executable()
	if err != nil || path == "" {
		path, err = exec.LookPath(argv[0])
		if err != nil {
			return Spec{}, fmt.Errorf("%w: resolve %q: %v", ErrUnreloadable, argv[0], err)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return Spec{}, fmt.Errorf("%w: working directory: %v", ErrUnreloadable, err)
	}

	return Spec{
		Path: path,
		Args: append([]string(nil), argv[1:]...),
		Dir:  dir,
		Env:  os.Environ(),
	}, nil
}

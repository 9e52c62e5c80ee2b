package proc

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// SupervisedEnv marks a child process as launched by the supervisor. The
// child branches on it to run the target directly instead of starting a
// second watch loop.
const SupervisedEnv = "REWATCH_SUPERVISED"

// Supervised reports whether the current process was launched by a
// supervisor.
func Supervised() bool {
	return os.Getenv(SupervisedEnv) == "true"
}

// Launcher starts supervised children from a frozen Spec.
type Launcher struct {
	spec     Spec
	extraEnv map[string]string
}

// NewLauncher constructs a launcher. extraEnv entries are appended to the
// child environment on every launch, before the supervision marker.
func NewLauncher(spec Spec, extraEnv map[string]string) *Launcher {
	return &Launcher{spec: spec, extraEnv: extraEnv}
}

// Start spawns a new child and returns a live handle immediately; it does
// not wait for the child to exit. A failure to start is fatal to the
// caller and is not retried.
func (l *Launcher) Start() (*Child, error) {
	cmd := exec.Command(l.spec.Path, l.spec.Args...)
	cmd.Dir = l.spec.Dir

	env := append([]string(nil), l.spec.Env...)
	keys := make([]string, 0, len(l.extraEnv))
	for k := range l.extraEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+l.extraEnv[k])
	}
	env = append(env, SupervisedEnv+"=true")
	cmd.Env = env

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	configureCmdSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start child: %w", err)
	}

	child := &Child{pid: cmd.Process.Pid, proc: cmd.Process}
	go func() {
		// Reap the child so a terminated process does not linger as a
		// zombie between reloads.
		_ = cmd.Wait()
	}()
	return child, nil
}

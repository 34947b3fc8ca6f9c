package builder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// MakeError is returned when the build tool exits with a non-zero status
type MakeError struct {
	Program string
	Code    int
	Output  []byte
}

func (e *MakeError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// runMake runs `program target` in dir, blocking until it exits. Stdout is
// captured, stderr goes straight to ours.
func runMake(program, dir, target string) ([]byte, error) {
	cmd := exec.Command(program, target)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &MakeError{Program: program, Code: exitErr.ExitCode(), Output: out}
	}
	if err != nil {
		return out, fmt.Errorf("failed to run %s: %w", program, err)
	}
	return out, nil
}

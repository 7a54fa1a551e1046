// Package open jumps into a log file with the user's editor.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// FileAt opens path in $EDITOR positioned at the given 1-based line.
// Editors disagree about the jump syntax, so the common ones are special
// cased; anything unknown just gets the file.
func FileAt(path string, line int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if line < 1 {
		line = 1
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	var cmd *exec.Cmd
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		cmd = exec.Command(editor, fmt.Sprintf("+%d", line), path)
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", path+":"+strconv.Itoa(line))
	case strings.Contains(editor, "less"):
		cmd = exec.Command(editor, "+"+strconv.Itoa(line), path)
	default:
		cmd = exec.Command(editor, path)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

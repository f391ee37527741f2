package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/zhscan/zhscan/internal/session"
)

// Occurrence opens the occurrence's file in $EDITOR, jumping to its
// line where the editor supports it.
func Occurrence(occ session.Occurrence) error {
	if _, err := os.Stat(occ.FilePath); err != nil {
		return fmt.Errorf("file not found: %s", occ.FilePath)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	return openInEditor(editor, occ)
}

func openInEditor(editor string, occ session.Occurrence) error {
	var cmd *exec.Cmd

	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		cmd = exec.Command(editor, fmt.Sprintf("+%d", occ.Line), occ.FilePath)
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", fmt.Sprintf("%s:%d:%d", occ.FilePath, occ.Line, occ.Column))
	case strings.Contains(editor, "less"):
		cmd = exec.Command(editor, "+"+strconv.Itoa(occ.Line), occ.FilePath)
	default:
		cmd = exec.Command(editor, occ.FilePath)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

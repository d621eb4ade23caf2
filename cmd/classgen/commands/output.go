package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/teranos/classbuilder/config"
	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/logger"
)

// writeOutput writes rendered text to path, refusing to replace an existing
// file unless overwrite is set
func writeOutput(path, content string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.WithHint(
			errors.Newf("output file %s already exists", path),
			"set output.overwrite = true or pick another path with -o")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Infow("Class written",
		logger.FieldFile, path,
		logger.FieldSize, len(content))
	return nil
}

// emit prints content to out, or writes it to path and reports success on errOut
func emit(out, errOut io.Writer, path, content string, overwrite bool) error {
	if path == "" {
		_, err := io.WriteString(out, content)
		return err
	}
	if err := writeOutput(path, content, overwrite); err != nil {
		return err
	}
	fmt.Fprintln(errOut, pterm.Success.Sprintf("Wrote %s", path))
	return nil
}

package tools

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

func writeFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

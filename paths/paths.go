// This file is part of Bensim.
//
// Bensim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bensim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bensim.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"

	"github.com/sixfiveohtwo/bensim/curated"
)

// PathError is the pattern for all errors from the package.
const PathError = "paths: %v"

// name of the resource directory when it is in the working directory.
const localResourceDir = ".bensim"

// name of the resource directory in the user configuration directory.
const configResourceDir = "bensim"

// ResourcePath returns the path to a file in the resource directory. The
// subPath is created if it does not exist. Either argument may be empty.
func ResourcePath(subPath string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return filepath.Join(dir, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourceDir); err == nil && fi.IsDir() {
		return localResourceDir, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}
	return filepath.Join(cfg, configResourceDir), nil
}

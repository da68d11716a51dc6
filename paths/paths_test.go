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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sixfiveohtwo/bensim/paths"
	"github.com/sixfiveohtwo/bensim/test"
)

// the local resource directory is preferred over the user configuration
// directory.
func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".bensim", 0700))

	pth, err := paths.ResourcePath("", "init.lua")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".bensim", "init.lua"))

	pth, err = paths.ResourcePath("scripts", "boot.lua")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".bensim", "scripts", "boot.lua"))

	fi, err := os.Stat(filepath.Join(".bensim", "scripts"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fi.IsDir(), true)

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".bensim")
}

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

package imageloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/logger"
)

// DefaultOrigin is the address at which program images are placed unless
// otherwise specified. It is the start of the ROM on the reference board.
const DefaultOrigin = 0x8000

// Loader is used to specify the program image to place in memory.
type Loader struct {
	// filename of image to load. can be a http or https URL
	Filename string

	// address of the first byte of the image
	Origin uint16

	// maximum number of bytes to load. zero means as many as will fit
	// between Origin and the end of memory
	MaxBytes int

	// the parsed image. valid after a successful call to Load()
	Image Image

	// expected hash of the file. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the file
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint16) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin,
	}
}

// ShortName returns the filename without path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Hash != ""
}

// limit returns the maximum number of bytes that can be loaded.
func (ld Loader) limit() int {
	n := memory.MemorySize - int(ld.Origin)
	if ld.MaxBytes > 0 && ld.MaxBytes < n {
		n = ld.MaxBytes
	}
	return n
}

// Load reads and parses the image. Loader filenames with a URL scheme will use
// that method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	var data []byte
	var err error

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		defer resp.Body.Close()
		data, err = io.ReadAll(resp.Body)

	case "file":
		data, err = os.ReadFile(ld.Filename)

	default:
		return curated.Errorf("imageloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("imageloader: %v", "unexpected hash value")
	}

	ld.Image, err = Parse(bytes.NewReader(data), ld.limit())
	if err != nil {
		return err
	}

	for _, w := range ld.Image.Warnings {
		logger.Log(logger.Allow, "imageloader", w)
	}

	ld.Hash = hash

	return nil
}

// Place copies the loaded image into memory at the Origin address. Returns
// the number of bytes copied.
func (ld Loader) Place(bus *memory.Bus) int {
	return bus.Load(ld.Origin, ld.Image.Data)
}

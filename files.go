/*
 * files.go, part of torsionrings.
 *
 * Copyright 2024 The torsionrings Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package rings

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder doesn't implement io.ReadCloser, its Close returns nothing.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//mappedFile is a read-only memory map of a whole file.
type mappedFile struct {
	*bytes.Reader
	m mmap.MMap
	f *os.File
}

func (M *mappedFile) Close() error {
	err := M.m.Unmap()
	if err2 := M.f.Close(); err == nil {
		err = err2
	}
	return err
}

//fileCloser closes both the decompressor and the underlying file.
type fileCloser struct {
	io.ReadCloser
	f *os.File
}

func (F fileCloser) Close() error {
	err := F.ReadCloser.Close()
	if err2 := F.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Open opens the file name for reading. The decompressor is chosen from the
//extension: .gz (gzip), .zst (zstd), .zz or .flate (raw deflate). Other files
//are memory-mapped, or read normally if they are empty or not regular files.
//The caller must close the returned reader.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Errorf(ErrUnableOpen, name, err, "Open")
	}
	var r io.ReadCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		r, err = gzip.NewReader(f)
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			r = zstdCloser{d}
		}
	case ".zz", ".flate":
		r = flate.NewReader(f)
	default:
		return mapFile(f)
	}
	if err != nil {
		f.Close()
		return nil, Errorf(ErrReading, name, err, "Open")
	}
	return fileCloser{r, f}, nil
}

func mapFile(f *os.File) (io.ReadCloser, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Errorf(ErrReading, f.Name(), err, "Open")
	}
	//Zero-length maps are not allowed.
	if !info.Mode().IsRegular() || info.Size() == 0 {
		return f, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		log.Printf("Unable to map %s, will read it normally: %v", f.Name(), err)
		return f, nil
	}
	return &mappedFile{Reader: bytes.NewReader(m), m: m, f: f}, nil
}

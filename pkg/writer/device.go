package writer

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CanWrite reports whether a wallpaper can be written to the named file.
// Purely advisory, nothing is opened. A path that does not exist yet is
// writable iff its parent directory is.
func CanWrite(filename string) bool {
	info, err := os.Stat(filename)
	if err == nil {
		if info.IsDir() {
			return false
		}
		return unix.Access(filename, unix.W_OK) == nil
	}
	if !os.IsNotExist(err) {
		return false
	}

	dir := filepath.Dir(filename)
	info, err = os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return unix.Access(dir, unix.W_OK) == nil
}

// CanWriteDevice reports whether a wallpaper can be written to the open
// file.
func CanWriteDevice(f *os.File) bool {
	if f == nil {
		return false
	}
	return writableFile(f)
}

// writableFile checks the access mode the file was opened with.
func writableFile(f *os.File) bool {
	flags, err := unix.FcntlInt(f.Fd(), unix.F_GETFL, 0)
	if err != nil {
		return false
	}
	mode := flags & unix.O_ACCMODE
	return mode == unix.O_WRONLY || mode == unix.O_RDWR
}

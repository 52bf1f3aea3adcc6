// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/prop"
)

func TestReadFileExisting(t *testing.T) {
	// Open an existing readable file, then read all: success carrying
	// the exact bytes.
	name := filepath.Join(t.TempDir(), "data.txt")
	content := []byte("first line\nsecond line\n")
	if err := os.WriteFile(name, content, 0o644); err != nil {
		t.Fatal(err)
	}

	h := prop.ReadFile(name)
	if !h.IsSuccess() {
		t.Fatalf("ReadFile failed with code %d", h.Code())
	}
	if got := h.Value(); !bytes.Equal(got, content) {
		t.Fatalf("content got %q, want %q", got, content)
	}
}

func TestReadFileMissing(t *testing.T) {
	// Opening a nonexistent file fails with the platform "not found"
	// code; the chained read stage never runs and an enclosing caller
	// observes the same code unchanged.
	name := filepath.Join(t.TempDir(), "missing.txt")

	readRan := false
	outer := prop.Go(prop.AwaitBind(prop.OpenFile(name), func(f *os.File) kont.Eff[int] {
		readRan = true
		f.Close()
		return prop.Done(0)
	}))

	if outer.IsSuccess() {
		t.Fatal("expected failure for missing file")
	}
	if got := outer.Code(); got != prop.Code(syscall.ENOENT) {
		t.Fatalf("code got %d, want ENOENT (%d)", got, prop.Code(syscall.ENOENT))
	}
	if readRan {
		t.Fatal("read stage ran after failed open")
	}

	h := prop.ReadFile(name)
	if h.IsSuccess() || h.Code() != prop.Code(syscall.ENOENT) {
		t.Fatal("ReadFile must forward the open stage's code unchanged")
	}
}

func TestReadFileReadError(t *testing.T) {
	// Open succeeds but the read fails partway: the overall result is
	// the read step's code, distinct from "not found". On Linux,
	// reading a directory descriptor fails with EISDIR.
	if runtime.GOOS != "linux" {
		t.Skip("skip: directory reads fail with EISDIR only on linux")
	}
	dir := t.TempDir()

	h := prop.ReadFile(dir)
	if h.IsSuccess() {
		t.Fatal("expected read failure on directory")
	}
	if got := h.Code(); got != prop.Code(syscall.EISDIR) {
		t.Fatalf("code got %d, want EISDIR (%d)", got, prop.Code(syscall.EISDIR))
	}
	if h.Code() == prop.Code(syscall.ENOENT) {
		t.Fatal("read error must be distinct from the not-found code")
	}
}

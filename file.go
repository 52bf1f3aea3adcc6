// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"bytes"
	"errors"
	"os"
	"syscall"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Reference consumers built purely on the propagation core. They are not
// part of the protocol; they demonstrate composing fallible computations
// over an external resource whose lifetime the consumer, not the core,
// must manage on every exit path.

// OpenFile opens the named file for reading as a leaf fallible
// computation: the work happens here, eagerly, and the returned handle
// is terminal. A failed open carries the platform error number — a
// missing file yields the platform "not found" code.
func OpenFile(name string) Handle[*os.File] {
	f, err := os.Open(name)
	if err != nil {
		return Failed[*os.File](errnoCode(err))
	}
	return Succeed(f)
}

// ReadFile reads the whole content of the named file by awaiting
// OpenFile. If the open failed its code is forwarded and the read stage
// never runs. A read failure carries the read step's own error number,
// and the file is closed on every exit path.
func ReadFile(name string) Handle[[]byte] {
	return Go(AwaitBind(OpenFile(name), func(f *os.File) kont.Eff[[]byte] {
		defer f.Close()
		var buf bytes.Buffer
		if _, err := iox.Copy(&buf, f); err != nil {
			return FailWith[[]byte](errnoCode(err))
		}
		return Done(buf.Bytes())
	}))
}

// errnoCode extracts the platform error number from an os error chain.
// Errors carrying no errno map to CodeFault.
func errnoCode(err error) Code {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno)
	}
	return CodeFault
}

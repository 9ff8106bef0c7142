//go:build linux

// Package futex wraps the Linux futex(2) wait/wake syscall pair that backs
// mutex.Mutex and mutex.QueuedMutex, grounded on the active-spin-then-park
// staging in the Go runtime's own lock_futex.go and wired through
// golang.org/x/sys/unix for the raw syscall plumbing, the way
// ehrlich-b-go-ublk drives io_uring through the same package.
package futex

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// These op codes and the private flag are part of the stable Linux futex
// ABI (linux/futex.h); x/sys/unix exposes SYS_FUTEX but not the op
// constants, so they are declared here directly.
const (
	opWait      = 0
	opWake      = 1
	privateFlag = 128
	waitPrivate = opWait | privateFlag
	wakePrivate = opWake | privateFlag
)

// Wait blocks while *addr == expected, waking on a matching Wake or
// spuriously. If timeout is positive, Wait returns ErrTimedOut once it
// elapses without the futex being woken.
func Wait(addr *uint32, expected uint32, timeout time.Duration) error {
	var ts *unix.Timespec
	if timeout > 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(waitPrivate),
		uintptr(expected),
		uintptr(unsafe.Pointer(ts)),
		0, 0,
	)
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR:
		return nil
	case unix.ETIMEDOUT:
		return ErrTimedOut
	default:
		return nil // futex wait is always safe to spuriously return from
	}
}

// Wake wakes up to n threads blocked in Wait on addr.
func Wake(addr *uint32, n int) {
	unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(wakePrivate),
		uintptr(n),
		0, 0, 0,
	)
}

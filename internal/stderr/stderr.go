//go:build !windows

package stderr

import (
	"bufio"
	"os"
	"sync"
	"syscall"
)

var (
	mu       sync.Mutex
	saved    = -1 // dup of the terminal's fd 2 while capturing
	pipeRead *os.File
	pipeW    *os.File
)

// Start redirects fd 2 into a pipe drained by Forward. Call it before the
// audio backend initializes. On error stderr is left untouched.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if saved >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	fd, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(fd)
		r.Close()
		w.Close()
		return err
	}

	saved, pipeRead, pipeW = fd, r, w
	go drain(r)
	return nil
}

func drain(r *os.File) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		push(sc.Text())
	}
}

// WriteOriginal writes msg to the terminal even while capture is active.
func WriteOriginal(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if saved >= 0 {
		_, _ = syscall.Write(saved, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores fd 2. Safe to call when capture never started.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if saved < 0 {
		return
	}
	_ = syscall.Dup2(saved, int(os.Stderr.Fd()))
	_ = syscall.Close(saved)
	saved = -1

	pipeW.Close()
	pipeRead.Close()
}

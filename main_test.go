package main

import (
	"bufio"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"
)

const childEnv = "BOOKEND_RUN_MAIN"

func TestInterruptWhilePrompting(t *testing.T) {
	if os.Getenv(childEnv) == "1" {
		os.Args = []string{"bookend", "--no-color"}
		main()
		return
	}
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}

	child := exec.Command(os.Args[0], "-test.run=^TestInterruptWhilePrompting$")
	child.Env = append(os.Environ(), childEnv+"=1")
	stdin, err := child.StdinPipe()
	if err != nil {
		t.Fatalf("Failed to open stdin pipe: %v", err)
	}
	defer stdin.Close()
	stdout, err := child.StdoutPipe()
	if err != nil {
		t.Fatalf("Failed to open stdout pipe: %v", err)
	}
	if err := child.Start(); err != nil {
		t.Fatalf("Failed to start child: %v", err)
	}

	prompted := make(chan bool, 1)
	go func() {
		reader := bufio.NewReader(stdout)
		var seen strings.Builder
		for {
			b, err := reader.ReadByte()
			if err != nil {
				prompted <- false
				return
			}
			seen.WriteByte(b)
			if strings.Contains(seen.String(), "Enter the name of the input file: ") {
				prompted <- true
				return
			}
		}
	}()

	select {
	case ok := <-prompted:
		if !ok {
			t.Fatal("Child exited before prompting")
		}
	case <-time.After(10 * time.Second):
		child.Process.Kill()
		t.Fatal("Child never prompted")
	}

	if err := child.Process.Signal(os.Interrupt); err != nil {
		t.Fatalf("Failed to interrupt child: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("Expected the interrupted child to fail, got %v", err)
		}
	case <-time.After(10 * time.Second):
		child.Process.Kill()
		t.Fatal("Interrupt did not stop the blocked prompt")
	}
}

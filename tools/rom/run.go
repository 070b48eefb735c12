package rom

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

// drainTimeout bounds how long output is still copied after the emulator
// exited.
const drainTimeout = 200 * time.Millisecond

// runROM starts the emulator command line cmdline with the ROM appended, on a
// pseudo terminal so the emulator flushes its log line by line. Output is
// copied to out. The emulator is stopped after a line reporting PASS, FAIL or
// a panic. The returned code is 1 for failures.
func runROM(cmdline, rompath string, out io.Writer) (int, error) {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		return 0, err
	}
	args = append(args, rompath)

	p, err := pty.New()
	if err != nil {
		return 0, err
	}

	cmd := p.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		p.Close()
		return 0, err
	}

	exited := make(chan struct{})
	go func() {
		cmd.Wait()
		close(exited)
	}()

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	defer signal.Stop(sigintr)
	go func() {
		select {
		case <-sigintr:
			cmd.Process.Kill()
		case <-exited:
		}
	}()

	var code int
	watched := make(chan struct{})
	go func() {
		defer close(watched)
		code = watch(p, out, func() {
			// give panic() time to print the stacktrace
			select {
			case <-time.After(500 * time.Millisecond):
				cmd.Process.Kill()
			case <-exited:
			}
		})
	}()

	// The parent holds the terminal open, so reads only end on Close.
	<-exited
	select {
	case <-watched:
	case <-time.After(drainTimeout):
	}
	p.Close()
	<-watched
	return code, nil
}

// watch copies lines from r to out until reading r fails. stop is called once
// after the first line ending the run.
func watch(r io.Reader, out io.Writer, stop func()) (code int) {
	scanner := bufio.NewScanner(r)
	exiting := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		io.WriteString(out, line+"\n")
		if exiting {
			continue
		}
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			code = 1
			fallthrough
		case line == "PASS":
			exiting = true
			go stop()
		}
	}
	return code
}

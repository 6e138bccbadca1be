package serialsink

import (
	"errors"
	"testing"

	"github.com/embedlog/embedlog/logger"
)

type fakePort struct {
	writes [][]byte
	err    error
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	p.writes = append(p.writes, cp)
	return len(b), nil
}

func (p *fakePort) joined() string {
	var out []byte
	for _, w := range p.writes {
		out = append(out, w...)
	}
	return string(out)
}

func TestAppend_WritesToPort(t *testing.T) {
	port := &fakePort{}
	s := New(port)

	n, err := s.Append([]byte("hello"))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if n != 5 {
		t.Errorf("Append returned %d, want 5", n)
	}
	if got := port.joined(); got != "hello" {
		t.Errorf("port received %q, want %q", got, "hello")
	}
}

func TestAppend_PropagatesPortError(t *testing.T) {
	wantErr := errors.New("uart: tx timeout")
	s := New(&fakePort{err: wantErr})

	if _, err := s.Append([]byte("x")); !errors.Is(err, wantErr) {
		t.Errorf("Append error = %v, want %v", err, wantErr)
	}
}

func TestFlushThroughLogger(t *testing.T) {
	port := &fakePort{}
	l, err := logger.New(New(port), logger.Config{Capacity: 128})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("link up\n")
	if len(port.writes) != 0 {
		t.Fatalf("staged bytes reached the port before flush")
	}
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := port.joined(), "<I> link up\n"; got != want {
		t.Errorf("port received %q, want %q", got, want)
	}
}

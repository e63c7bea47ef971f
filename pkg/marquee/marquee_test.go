package marquee

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"kbd_marquee/pkg/led"
)

// scriptKeys replays one entry per poll: 0 means no key pending. Once the
// script runs out it reports no key forever.
type scriptKeys struct {
	script []byte
	err    error
	polls  int
}

func (s *scriptKeys) PollKey() (byte, bool, error) {
	s.polls++
	if len(s.script) == 0 {
		if s.err != nil {
			return 0, false, s.err
		}
		return 0, false, nil
	}
	key := s.script[0]
	s.script = s.script[1:]
	return key, key != 0, nil
}

type recordingIndicator struct {
	set []led.Pattern
	err error
}

func (r *recordingIndicator) Set(p led.Pattern) error {
	r.set = append(r.set, p)
	return r.err
}

func (r *recordingIndicator) Close() error { return nil }

type countingMode struct {
	restores int
	err      error
}

func (c *countingMode) Restore() error {
	c.restores++
	return c.err
}

type harness struct {
	keys   *scriptKeys
	leds   *recordingIndicator
	mode   *countingMode
	delays []time.Duration
	logs   bytes.Buffer
	runner *Runner
}

func newHarness(script string) *harness {
	h := &harness{
		keys: &scriptKeys{script: []byte(script)},
		leds: &recordingIndicator{},
		mode: &countingMode{},
	}
	h.runner = New(Options{
		Keys:      h.keys,
		Indicator: h.leds,
		Mode:      h.mode,
		Delay:     func(d time.Duration) { h.delays = append(h.delays, d) },
		Tick:      500 * time.Millisecond,
		Logger:    slog.New(slog.NewTextHandler(&h.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	return h
}

func TestRun_QuitImmediately(t *testing.T) {
	h := newHarness("q")

	res, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Reason != ReasonQuitKey {
		t.Errorf("Expected quit key, got %s", res.Reason)
	}
	if res.Ticks != 0 || len(h.delays) != 0 {
		t.Errorf("Expected no ticks, got %d ticks and %d delays", res.Ticks, len(h.delays))
	}
	if !reflect.DeepEqual(h.leds.set, []led.Pattern{led.Off}) {
		t.Errorf("Expected only the off pattern, got %v", h.leds.set)
	}
	if h.mode.restores != 1 {
		t.Errorf("Expected one restore, got %d", h.mode.restores)
	}
}

func TestRun_Sequence(t *testing.T) {
	h := newHarness("\x00\x00R\x00Q")

	res, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []led.Pattern{led.Num, led.Caps, led.Num, led.Scroll, led.Off}
	if !reflect.DeepEqual(h.leds.set, want) {
		t.Errorf("Pushed %v, want %v", h.leds.set, want)
	}
	if res.Ticks != 4 {
		t.Errorf("Expected 4 ticks, got %d", res.Ticks)
	}
	if res.Final != led.Off {
		t.Errorf("Expected final pattern off, got %s", res.Final)
	}
	for i, d := range h.delays {
		if d != 500*time.Millisecond {
			t.Errorf("Delay %d = %v, want 500ms", i, d)
		}
	}
	if len(h.delays) != 4 {
		t.Errorf("Expected 4 delays, got %d", len(h.delays))
	}
	if h.mode.restores != 1 {
		t.Errorf("Expected one restore, got %d", h.mode.restores)
	}
}

func TestRun_KeysAreCaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"\x00r\x00l\x00q", "\x00R\x00L\x00Q"},
		{"x\x00rxq", "x\x00RxQ"},
	}

	for _, pair := range pairs {
		lower := newHarness(pair[0])
		upper := newHarness(pair[1])

		if _, err := lower.runner.Run(context.Background()); err != nil {
			t.Fatalf("Run(%q) failed: %v", pair[0], err)
		}
		if _, err := upper.runner.Run(context.Background()); err != nil {
			t.Fatalf("Run(%q) failed: %v", pair[1], err)
		}

		if !reflect.DeepEqual(lower.leds.set, upper.leds.set) {
			t.Errorf("Lower %q pushed %v, upper %q pushed %v", pair[0], lower.leds.set, pair[1], upper.leds.set)
		}
	}
}

func TestRun_UnknownKeysOnlyTick(t *testing.T) {
	h := newHarness("xyz\x1bq")

	if _, err := h.runner.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []led.Pattern{led.Num, led.Caps, led.Scroll, led.Num, led.Off}
	if !reflect.DeepEqual(h.leds.set, want) {
		t.Errorf("Pushed %v, want %v", h.leds.set, want)
	}
}

func TestRun_Canceled(t *testing.T) {
	h := newHarness("")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	h.runner.wait = func(time.Duration) {
		calls++
		if calls == 3 {
			cancel()
		}
	}

	res, err := h.runner.Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != ReasonCanceled {
		t.Errorf("Expected canceled, got %s", res.Reason)
	}
	if res.Ticks != 3 {
		t.Errorf("Expected cancellation after 3 ticks, got %d", res.Ticks)
	}
	if last := h.leds.set[len(h.leds.set)-1]; last != led.Off {
		t.Errorf("Expected LEDs off at exit, got %s", last)
	}
	if h.mode.restores != 1 {
		t.Errorf("Expected one restore, got %d", h.mode.restores)
	}
}

func TestRun_InputClosed(t *testing.T) {
	h := newHarness("\x00")
	h.keys.err = io.EOF

	res, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != ReasonInputClosed {
		t.Errorf("Expected input closed, got %s", res.Reason)
	}
	if h.mode.restores != 1 {
		t.Errorf("Expected one restore, got %d", h.mode.restores)
	}
}

func TestRun_PollErrorStillCleansUp(t *testing.T) {
	pollErr := errors.New("bad descriptor")
	h := newHarness("")
	h.keys.err = pollErr

	res, err := h.runner.Run(context.Background())
	if !errors.Is(err, pollErr) {
		t.Fatalf("Expected poll error, got %v", err)
	}
	if res.Reason != ReasonInputError {
		t.Errorf("Expected input error, got %s", res.Reason)
	}
	if !reflect.DeepEqual(h.leds.set, []led.Pattern{led.Off}) {
		t.Errorf("Expected only the off pattern, got %v", h.leds.set)
	}
	if h.mode.restores != 1 {
		t.Errorf("Expected one restore, got %d", h.mode.restores)
	}
}

func TestRun_PushFailuresLoggedOnce(t *testing.T) {
	h := newHarness("\x00\x00\x00\x00q")
	h.leds.err = errors.New("EPERM")

	res, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 4 {
		t.Errorf("Animation should continue past push failures, got %d ticks", res.Ticks)
	}
	if res.PushFailures != 4 {
		t.Errorf("Expected 4 push failures, got %d", res.PushFailures)
	}

	logs := h.logs.String()
	if n := strings.Count(logs, "level=WARN msg=\"Failed to set keyboard LEDs, continuing\""); n != 1 {
		t.Errorf("Expected one warning, got %d in:\n%s", n, logs)
	}
}

func TestRun_RestoreError(t *testing.T) {
	restoreErr := errors.New("tcsetattr failed")
	h := newHarness("q")
	h.mode.err = restoreErr

	_, err := h.runner.Run(context.Background())
	if !errors.Is(err, restoreErr) {
		t.Errorf("Expected restore error, got %v", err)
	}
}

func TestReasonString(t *testing.T) {
	for _, r := range []Reason{ReasonQuitKey, ReasonCanceled, ReasonInputClosed, ReasonInputError} {
		if r.String() == "running" {
			t.Errorf("Reason %d has no name", int(r))
		}
	}
}

package fab

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGameLayout(t *testing.T) {
	tests := []struct {
		name      string
		resizable bool
		outW      int
		outH      int
		wantW     int
		wantH     int
	}{
		{"fixed", false, 1000, 700, 480, 800},
		{"resizable", true, 1000, 700, 1000, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(480, 800)
			g := &game{host: h, cfg: RunConfig{Width: 480, Height: 800, Resizable: tt.resizable}}
			w, hh := g.Layout(tt.outW, tt.outH)
			if w != tt.wantW || hh != tt.wantH {
				t.Errorf("Layout = %dx%d, want %dx%d", w, hh, tt.wantW, tt.wantH)
			}
			sw, sh := h.Size()
			if int(sw) != tt.wantW || int(sh) != tt.wantH {
				t.Errorf("host size = %vx%v, want %dx%d", sw, sh, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRunRejectsInvalidSize(t *testing.T) {
	h, _ := newTestHost(480, 800)
	if err := Run(h, RunConfig{Width: 0, Height: 800}); err == nil {
		t.Error("expected an error for a zero width")
	}
}

func TestGameUpdateFuncError(t *testing.T) {
	h, _ := newTestHost(480, 800)
	called := 0
	h.SetUpdateFunc(func() error {
		called++
		return errStop
	})
	g := &game{host: h}
	if err := g.Update(); err != errStop {
		t.Errorf("Update error = %v, want errStop", err)
	}
	if called != 1 {
		t.Errorf("update func called %d times, want 1", called)
	}
}

var errStop = errors.New("stop")

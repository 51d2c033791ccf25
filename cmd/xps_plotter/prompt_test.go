package main

import (
	"strings"
	"testing"

	"github.com/sharach/xps_plotter_go/internal/pipeline"
)

func TestPrompterConfirm(t *testing.T) {
	var out strings.Builder
	p := newPrompter(strings.NewReader("y\n"), &out)
	if err := p.confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !strings.Contains(out.String(), "press 'y'") {
		t.Errorf("confirmation prompt missing: %q", out.String())
	}
}

func TestPrompterConfirmRejectsAnythingElse(t *testing.T) {
	for _, in := range []string{"n\n", "'y'\n", "yes\n", "\n"} {
		p := newPrompter(strings.NewReader(in), &strings.Builder{})
		if err := p.confirm(); err == nil {
			t.Errorf("confirm(%q): expected error", in)
		}
	}
}

func TestPrompterAskDirectory(t *testing.T) {
	p := newPrompter(strings.NewReader("/data/scans\n"), &strings.Builder{})
	dir, err := p.askDirectory()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/data/scans" {
		t.Errorf("dir = %q", dir)
	}

	p = newPrompter(strings.NewReader("\n"), &strings.Builder{})
	dir, err = p.askDirectory()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "." {
		t.Errorf("empty answer: dir = %q, want .", dir)
	}
}

func TestPrompterAskFloat(t *testing.T) {
	p := newPrompter(strings.NewReader("1000.5\n"), &strings.Builder{})
	v, err := p.askFloat("photon energy", "Enter: ")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1000.5 {
		t.Errorf("value = %g", v)
	}

	// Invalid input terminates; there is no retry-in-place.
	for _, in := range []string{"abc\n", "-1\n"} {
		p = newPrompter(strings.NewReader(in), &strings.Builder{})
		if _, err := p.askFloat("photon energy", "Enter: "); err == nil {
			t.Errorf("askFloat(%q): expected error", in)
		}
	}
}

func TestPrompterAskMode(t *testing.T) {
	p := newPrompter(strings.NewReader("B\n"), &strings.Builder{})
	mode, err := p.askMode()
	if err != nil {
		t.Fatal(err)
	}
	if mode != pipeline.ModeBoth {
		t.Errorf("mode = %v, want both", mode)
	}

	p = newPrompter(strings.NewReader("q\n"), &strings.Builder{})
	if _, err := p.askMode(); err == nil {
		t.Error("expected error for invalid mode letter")
	}
}

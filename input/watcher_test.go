package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	namer := newNamer()
	path := filepath.Join(t.TempDir(), "keybinds.yaml")
	if err := os.WriteFile(path, []byte("bindings: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := make(chan []BindingSpec, 16)
	w, err := WatchKeybinds(path, namer, out, quietLog())
	if err != nil {
		t.Fatalf("WatchKeybinds() error = %v", err)
	}
	defer w.Close()

	doc := "bindings:\n  - action: hail\n    type: jbutton\n    key: \"5\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case specs := <-out:
			// a write can be observed before it completes
			if len(specs) == 0 {
				continue
			}
			want := BindingSpec{Action: ActionHail, Kind: KindJoyButton, Key: 5, Mod: ModNone}
			if len(specs) != 1 || specs[0] != want {
				t.Fatalf("specs = %+v, want %+v", specs, want)
			}
			return
		case <-timeout:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.toml")
	w, err := WatchKeybinds(path, newNamer(), make(chan []BindingSpec), quietLog())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

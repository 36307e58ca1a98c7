package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		event  fsnotify.Event
		want   ChangeKind
		wantOK bool
	}{
		{"yaml_write", fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Write}, SpecChanged, true},
		{"yml_create", fsnotify.Event{Name: "prefabs/level.YML", Op: fsnotify.Create}, SpecChanged, true},
		{"script_rename", fsnotify.Event{Name: "prefabs/scripts/floaty.tengo", Op: fsnotify.Rename}, ScriptChanged, true},
		{"chmod_ignored", fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Chmod}, 0, false},
		{"remove_ignored", fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Remove}, 0, false},
		{"other_ext", fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := classify(c.event)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && got.Kind != c.want {
				t.Fatalf("kind = %v, want %v", got.Kind, c.want)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, []byte("max_speed: 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		if c.Kind != SpecChanged || c.Name() != "player.yaml" {
			t.Fatalf("unexpected change %+v", c)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	for range w.Changes {
		// drains buffered changes; the loop ends only once the channel is closed
	}
}

func TestChangeMatches(t *testing.T) {
	c := Change{Kind: SpecChanged, Path: filepath.Join("prefabs", "player.yaml")}
	cases := []struct {
		name string
		want bool
	}{
		{"player.yaml", true},
		{"prefabs/player.yaml", true},
		{"level.yaml", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Matches(tc.name); got != tc.want {
				t.Fatalf("Matches(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestWatcherWaitsForFinalWrite(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, []byte("max_speed: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lastWrite := time.Now()

	select {
	case c := <-w.Changes:
		if time.Since(lastWrite) < debounce/2 {
			t.Fatalf("change reported before the last write settled")
		}
		if !c.Matches("player.yaml") {
			t.Fatalf("unexpected change %+v", c)
		}
		spec, err := LoadMoverSpec(c.Name())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if spec.MaxSpeed != 0.2 {
			t.Fatalf("reload saw max_speed %v, want the final write", spec.MaxSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change")
	}

	select {
	case c := <-w.Changes:
		t.Fatalf("burst should collapse into one change, got extra %+v", c)
	case <-time.After(3 * debounce):
	}
}

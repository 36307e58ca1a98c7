package prefabs

import (
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

type ChangeKind int

const (
	SpecChanged ChangeKind = iota
	ScriptChanged
)

// Change reports an edited prefab file.
type Change struct {
	Kind ChangeKind
	Path string
}

// Name is the file name relative to its watched directory.
func (c Change) Name() string {
	return filepath.Base(c.Path)
}

// Matches reports whether c is about the prefab name as accepted by Load,
// with or without a directory prefix.
func (c Change) Matches(name string) bool {
	return name != "" && c.Name() == path.Base(cleanPrefabPath(name))
}

// Watcher turns fsnotify events on prefab and script files into Changes.
// A file is reported once it has been quiet for the debounce window, so a
// truncate followed by a write yields a single Change after the write.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

type settled struct {
	change Change
	seq    uint64
}

func (w *Watcher) run() {
	defer close(w.done)

	timers := make(map[string]*time.Timer)
	latest := make(map[string]uint64)
	fired := make(chan settled, 16)
	var seq uint64
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			change, ok := classify(event)
			if !ok {
				continue
			}
			seq++
			latest[event.Name] = seq
			if t := timers[event.Name]; t != nil {
				t.Stop()
			}
			s := settled{change: change, seq: seq}
			timers[event.Name] = time.AfterFunc(debounce, func() {
				select {
				case fired <- s:
				case <-w.closeCh:
				}
			})
		case s := <-fired:
			// a timer stopped too late still delivers; only the newest counts
			if latest[s.change.Path] != s.seq {
				continue
			}
			delete(latest, s.change.Path)
			delete(timers, s.change.Path)
			w.send(s.change)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// send drops the change if the consumer has fallen behind; the next write
// to the file will report it again.
func (w *Watcher) send(c Change) {
	select {
	case w.Changes <- c:
	case <-w.closeCh:
	default:
	}
}

func classify(event fsnotify.Event) (Change, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return Change{}, false
	}
	switch {
	case isSpecFile(event.Name):
		return Change{Kind: SpecChanged, Path: event.Name}, true
	case isScriptFile(event.Name):
		return Change{Kind: ScriptChanged, Path: event.Name}, true
	}
	return Change{}, false
}

func isSpecFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".tengo"
}

package docstore

import (
	"context"
	"errors"
	"sync"
)

// reads the latest state of a document for delivery to a listener
type loadFunc func(ctx context.Context, path string) (Document, error)

// fans change notifications out to per-path listeners. Stores only report
// that a path changed; each listener re-reads the document, so bursts of
// changes collapse into one delivery of the newest state.
type watchers struct {
	mu     sync.Mutex
	byPath map[string]map[*watcher]struct{}
	closed bool
}

type watcher struct {
	path   string
	fn     Listener
	load   loadFunc
	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	owner  *watchers
}

func newWatchers() *watchers {
	return &watchers{
		byPath: make(map[string]map[*watcher]struct{}),
	}
}

// registers a listener and schedules delivery of the current snapshot
func (ws *watchers) add(ctx context.Context, path string, load loadFunc, fn Listener) (*watcher, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.closed {
		return nil, ErrClosed
	}

	wctx, cancel := context.WithCancel(ctx)
	w := &watcher{
		path:   path,
		fn:     fn,
		load:   load,
		wake:   make(chan struct{}, 1),
		ctx:    wctx,
		cancel: cancel,
		owner:  ws,
	}

	if ws.byPath[path] == nil {
		ws.byPath[path] = make(map[*watcher]struct{})
	}
	ws.byPath[path][w] = struct{}{}

	w.wake <- struct{}{}
	go w.run()

	return w, nil
}

// wakes every listener of path
func (ws *watchers) notify(path string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for w := range ws.byPath[path] {
		select {
		case w.wake <- struct{}{}:
		default:
			// a delivery is already pending and will read the newest state
		}
	}
}

// wakes every listener; used after the change feed reconnects, since
// changes made while it was down were never announced
func (ws *watchers) notifyAll() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for _, set := range ws.byPath {
		for w := range set {
			select {
			case w.wake <- struct{}{}:
			default:
			}
		}
	}
}

// cancels every listener and refuses new ones
func (ws *watchers) closeAll() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.closed = true
	for _, set := range ws.byPath {
		for w := range set {
			w.cancel()
		}
	}
}

func (ws *watchers) remove(w *watcher) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if set, ok := ws.byPath[w.path]; ok {
		delete(set, w)
		if len(set) == 0 {
			delete(ws.byPath, w.path)
		}
	}
}

// number of live listeners on a path
func (ws *watchers) count(path string) int {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return len(ws.byPath[path])
}

func (w *watcher) Cancel() {
	w.cancel()
}

func (w *watcher) run() {
	defer w.owner.remove(w)

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.wake:
		}

		data, err := w.load(w.ctx, w.path)
		if w.ctx.Err() != nil {
			return
		}

		switch {
		case errors.Is(err, ErrNotFound):
			w.fn(Snapshot{Path: w.path}, nil)
		case err != nil:
			w.fn(Snapshot{Path: w.path}, err)
		default:
			w.fn(Snapshot{Path: w.path, Exists: true, Data: data}, nil)
		}
	}
}

// Package screen tracks viewport dimensions and notifies resize listeners.
package screen

import "sync"

// Window is the viewport a surface is sized to.
type Window struct {
	mu        sync.Mutex
	width     int
	height    int
	nextID    int
	listeners map[int]func(w, h int)
}

func NewWindow(width, height int) *Window {
	return &Window{
		width:     width,
		height:    height,
		listeners: make(map[int]func(w, h int)),
	}
}

func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Set updates the dimensions and notifies listeners if they changed.
// Negative sizes are clamped to zero.
func (w *Window) Set(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	w.mu.Lock()
	if width == w.width && height == w.height {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height
	fns := make([]func(int, int), 0, len(w.listeners))
	for id := 0; id < w.nextID; id++ {
		if fn, ok := w.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}

// OnResize registers fn and returns a func that unregisters it.
func (w *Window) OnResize(fn func(w, h int)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.listeners, id)
			w.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered resize listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

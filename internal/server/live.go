package server

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// ReloadMessage is sent to connected browsers after a change.
const ReloadMessage = "reload"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveReload watches directories and tells connected browsers to reload
// when anything under them changes.
type LiveReload struct {
	// Debounce collapses bursts of file events into one reload.
	Debounce time.Duration

	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewLiveReload watches every directory under dirs. Empty entries are skipped.
func NewLiveReload(logger *log.Logger, dirs ...string) (*LiveReload, error) {
	if logger == nil {
		logger = log.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	l := &LiveReload{
		Debounce: 200 * time.Millisecond,
		watcher:  watcher,
		logger:   logger,
		clients:  make(map[*websocket.Conn]struct{}),
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := l.watchTree(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return l, nil
}

// watchTree adds root and its subdirectories; fsnotify is not recursive.
func (l *LiveReload) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return l.watcher.Add(path)
		}
		return nil
	})
}

// Run processes file events until ctx is done or the watcher is closed.
func (l *LiveReload) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := l.watchTree(event.Name); err != nil {
						l.logger.Printf("live: watching %s: %v", event.Name, err)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(l.Debounce)
			} else {
				timer.Reset(l.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			n := l.Broadcast(ReloadMessage)
			l.logger.Printf("live: change detected, reloaded %d client(s)", n)
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger.Printf("live: watcher error: %v", err)
		}
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it disconnects.
func (l *LiveReload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.logger.Printf("live: websocket upgrade: %v", err)
		return
	}

	l.mu.Lock()
	l.clients[conn] = struct{}{}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.clients, conn)
		l.mu.Unlock()
		conn.Close()
	}()

	// Browsers never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.logger.Printf("live: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends msg to every connected client and returns how many received it.
func (l *LiveReload) Broadcast(msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	sent := 0
	for conn := range l.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			l.logger.Printf("live: websocket write: %v", err)
			continue
		}
		sent++
	}
	return sent
}

// Clients returns the number of connected browsers.
func (l *LiveReload) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Close stops the watcher. Run returns once its channels close.
func (l *LiveReload) Close() error {
	return l.watcher.Close()
}

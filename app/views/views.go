// Package views renders the server-side HTML pages. Templates are embedded
// in the binary; in dev mode an on-disk template dir is parsed instead and
// re-parsed whenever fsnotify reports a change.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var embedded embed.FS

type Renderer struct {
	mu   sync.RWMutex
	tmpl *template.Template
	dir  string
	log  zerolog.Logger
}

// New parses the embedded templates. If dir points at an existing directory
// (dev checkouts), it is used instead and watched for edits.
func New(dir string, watch bool, log zerolog.Logger) (*Renderer, error) {
	r := &Renderer{dir: dir, log: log}

	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if err := r.reloadFromDisk(); err != nil {
				return nil, err
			}
			if watch {
				go r.watchDir()
			}
			return r, nil
		}
	}

	tmpl, err := template.ParseFS(embedded, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) reloadFromDisk() error {
	tmpl, err := template.ParseGlob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()
	return nil
}

func (r *Renderer) watchDir() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.log.Error().Err(err).Msg("template watcher init failed")
		return
	}
	defer watcher.Close()
	if err := watcher.Add(r.dir); err != nil {
		r.log.Error().Err(err).Str("dir", r.dir).Msg("template watcher add failed")
		return
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := r.reloadFromDisk(); err != nil {
				r.log.Error().Err(err).Msg("template reload failed")
			} else {
				r.log.Debug().Str("file", ev.Name).Msg("templates reloaded")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.log.Error().Err(err).Msg("template watcher error")
		}
	}
}

func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	r.mu.RLock()
	tmpl := r.tmpl
	r.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

package main

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"shaban/pkg/plate"
)

// parserHolder lets the region catalog be swapped at runtime. Each Parser is
// immutable, so readers always see a complete, consistent catalog.
type parserHolder struct {
	mu sync.RWMutex
	p  *plate.Parser
}

func newParserHolder(p *plate.Parser) *parserHolder {
	return &parserHolder{p: p}
}

func (h *parserHolder) get() *plate.Parser {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.p
}

func (h *parserHolder) set(p *plate.Parser) {
	h.mu.Lock()
	h.p = p
	h.mu.Unlock()
}

// watchRegions reloads the regions file whenever it changes and swaps in a
// parser built from the new catalog. The watch is placed on the containing
// directory, not the file: editors and deploy tooling replace files by
// renaming a temp file over them, which would silently carry a file-level
// watch away with the old inode. Events are filtered to the target name.
// A reload that fails (file mid-write, emptied, deleted) keeps the previous
// parser. Returns a stop function.
func watchRegions(path string) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				regions, err := plate.LoadRegionsFile(target)
				if err != nil {
					log.Printf("region catalog reload skipped: %v", err)
					continue
				}
				parser.set(plate.NewParser(regions, cfg.Separators))
				log.Printf("region catalog reloaded: %d entries", len(regions))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("region catalog watcher: %v", err)
			}
		}
	}()
	return func() { _ = w.Close() }, nil
}

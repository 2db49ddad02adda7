package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher следит за файлами данных плагинов.
// Наблюдаем за директорией, а не за файлом: атомарная запись через rename
// заменяет inode, и наблюдение за самим файлом теряется.
type Watcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.Logger
	callbacks map[string][]ChangeCallback
	dirs      map[string]int
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// ChangeCallback функция обратного вызова; вызывается из горутины наблюдателя
type ChangeCallback func(event ChangeEvent)

// ChangeEvent событие изменения файла данных
type ChangeEvent struct {
	Path      string
	Operation Operation
}

// Operation тип операции с файлом
type Operation int

const (
	FileCreated Operation = iota
	FileModified
	FileDeleted
	FileRenamed
)

// NewWatcher создает наблюдатель и запускает цикл обработки событий
func NewWatcher(ctx context.Context, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(ctx)

	w := &Watcher{
		watcher:   fsw,
		logger:    logger,
		callbacks: make(map[string][]ChangeCallback),
		dirs:      make(map[string]int),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go w.watchLoop()

	return w, nil
}

// WatchFile подписывает callback на изменения файла
func (w *Watcher) WatchFile(path string, callback ChangeCallback) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.callbacks[path] = append(w.callbacks[path], callback)
	return nil
}

// Unwatch удаляет все обработчики файла
func (w *Watcher) Unwatch(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.callbacks[path]; !ok {
		return nil
	}
	delete(w.callbacks, path)

	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.watcher.Remove(dir)
}

// Close останавливает наблюдатель
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

// watchLoop главный цикл наблюдения
func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("data watcher error", zap.Error(err))
		}
	}
}

// handleEvent вызывает обработчики, подписанные на путь события
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	w.mu.RLock()
	callbacks := append([]ChangeCallback(nil), w.callbacks[path]...)
	w.mu.RUnlock()

	if len(callbacks) == 0 {
		return
	}

	change := ChangeEvent{Path: path, Operation: convertOp(event.Op)}
	w.logger.Debug("data file changed",
		zap.String("path", path),
		zap.Stringer("operation", change.Operation))

	for _, callback := range callbacks {
		callback(change)
	}
}

// convertOp конвертирует fsnotify.Op в Operation
func convertOp(op fsnotify.Op) Operation {
	switch {
	case op.Has(fsnotify.Create):
		return FileCreated
	case op.Has(fsnotify.Write):
		return FileModified
	case op.Has(fsnotify.Remove):
		return FileDeleted
	case op.Has(fsnotify.Rename):
		return FileRenamed
	default:
		return FileModified
	}
}

// String возвращает строковое представление операции
func (op Operation) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

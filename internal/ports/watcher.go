package ports

// Watcher monitors a fixed set of files for changes.
type Watcher interface {
	// Watch starts monitoring the given files. onChange is called with the
	// absolute path of each changed file. Non-blocking.
	Watch(files []string, onChange func(path string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}

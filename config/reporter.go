package config

import (
	"archive/zip"
	"fmt"
	"os"
	"sort"
	"time"

	"mbx/misc"
)

// Prepare creates an initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	if len(conf.Destination) > 0 {
		if f, err := os.Create(conf.Destination); err == nil {
			r.file = f
			return r, nil
		}
	}
	f, err := os.CreateTemp("", misc.GetAppName()+"-report.*.zip")
	if err != nil {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	r.file = f
	return r, nil
}

type entry struct {
	path  string
	stamp time.Time
	data  []byte
}

// Report accumulates artifacts for a debug report archive. All methods are
// nil-tolerant so callers do not have to check whether a report was
// requested. NOT safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Name returns the underlying archive file name.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	return r.file.Name()
}

// Store remembers a file path to be archived on Close.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.path != path {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.path, path))
	}
	r.entries[name] = entry{path: path, stamp: time.Now()}
}

// StoreData remembers binary data to be archived on Close under the name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// Close finalizes the report archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()

	w := zip.NewWriter(r.file)
	defer w.Close()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e := r.entries[name]
		data := e.data
		if data == nil {
			var err error
			if data, err = os.ReadFile(e.path); err != nil {
				// best effort: a missing artifact must not break the report
				data = []byte(fmt.Sprintf("unable to read %s: %v", e.path, err))
			}
		}
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: e.stamp}
		f, err := w.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("unable to add %s to report: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("unable to write %s to report: %w", name, err)
		}
	}
	return nil
}

package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	slideDir    = "ppt/slides/"
	slidePrefix = "slide"
	slideSuffix = ".xml"
)

// Package is an in-memory pptx archive: every entry read up front, in
// archive order, so the output can be rebuilt byte for byte apart from
// the slides that were replaced.
type Package struct {
	entries []*entry
	index   map[string]*entry
}

type entry struct {
	name string
	data []byte
}

// Open reads the whole archive at path into memory.
func Open(path string) (*Package, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pptx archive: %w", err)
	}
	defer r.Close()

	pkg := &Package{index: make(map[string]*entry)}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive entry %s: %w", f.Name, err)
		}
		e := &entry{name: f.Name, data: data}
		pkg.entries = append(pkg.entries, e)
		pkg.index[f.Name] = e
	}
	return pkg, nil
}

// SlideNames returns the archive names of the slide bodies in
// ascending slide-index order.
func (p *Package) SlideNames() []string {
	type numbered struct {
		name  string
		index int
	}
	var slides []numbered
	for _, e := range p.entries {
		if idx, ok := slideIndex(e.name); ok {
			slides = append(slides, numbered{name: e.name, index: idx})
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].index < slides[j].index })

	names := make([]string, len(slides))
	for i, s := range slides {
		names[i] = s.name
	}
	return names
}

// slideIndex extracts the numeric suffix of a slide body name, e.g.
// ppt/slides/slide12.xml → 12. Relationship parts and anything in
// subdirectories do not match.
func slideIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, slideDir) {
		return 0, false
	}
	base := name[len(slideDir):]
	if strings.Contains(base, "/") ||
		!strings.HasPrefix(base, slidePrefix) || !strings.HasSuffix(base, slideSuffix) {
		return 0, false
	}
	idx, err := strconv.Atoi(base[len(slidePrefix) : len(base)-len(slideSuffix)])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// File returns the contents of the named archive entry.
func (p *Package) File(name string) ([]byte, bool) {
	e, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// SetFile replaces the contents of an existing entry or appends a new
// one.
func (p *Package) SetFile(name string, data []byte) {
	if e, ok := p.index[name]; ok {
		e.data = data
		return
	}
	e := &entry{name: name, data: data}
	p.entries = append(p.entries, e)
	p.index[name] = e
}

// Save writes the archive to path in one pass. On error the partial
// output file is removed.
func (p *Package) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := zip.NewWriter(f)
	for _, e := range p.entries {
		fw, err := w.Create(e.name)
		if err == nil {
			_, err = fw.Write(e.data)
		}
		if err != nil {
			w.Close()
			f.Close()
			os.Remove(path)
			return fmt.Errorf("failed to write archive entry %s: %w", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

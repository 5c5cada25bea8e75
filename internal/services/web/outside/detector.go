// Package outside detects pointer-downs that land outside watched regions.
//
// A region is a DOM id. The client reports the ancestry of region ids
// around the pointer, innermost first; a watched region fires when it is
// not part of that ancestry.
package outside

import (
	"strings"
	"sync"
)

// Target is the ancestry of region ids containing a pointer-down.
type Target []string

// NewTarget trims ids and drops blanks.
func NewTarget(ids ...string) Target {
	target := make(Target, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			target = append(target, id)
		}
	}
	return target
}

// Within reports whether region is in the target's ancestry.
func (t Target) Within(region string) bool {
	region = strings.TrimSpace(region)
	if region == "" {
		return false
	}
	for _, id := range t {
		if id == region {
			return true
		}
	}
	return false
}

type watch struct {
	region string
	fn     func()
}

// Detector holds the regions currently mounted. The zero value is ready to
// use and safe for concurrent use.
type Detector struct {
	mu      sync.Mutex
	nextID  uint64
	watches map[uint64]watch
}

// Watch registers fn for pointer-downs outside region. The returned release
// function removes the watch and may be called more than once.
func (d *Detector) Watch(region string, fn func()) func() {
	region = strings.TrimSpace(region)
	if region == "" || fn == nil {
		return func() {}
	}
	d.mu.Lock()
	if d.watches == nil {
		d.watches = make(map[uint64]watch)
	}
	d.nextID++
	id := d.nextID
	d.watches[id] = watch{region: region, fn: fn}
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.watches, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch calls every watch whose region does not contain target and
// returns how many fired. Callbacks run without the lock held.
func (d *Detector) Dispatch(target Target) int {
	d.mu.Lock()
	fire := make([]func(), 0, len(d.watches))
	for _, w := range d.watches {
		if !target.Within(w.region) {
			fire = append(fire, w.fn)
		}
	}
	d.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
	return len(fire)
}

// Len returns the number of active watches.
func (d *Detector) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.watches)
}

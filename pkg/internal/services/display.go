package services

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// PageStyle is the set of page level classes held by mounted views.
type PageStyle struct {
	lock    sync.Mutex
	holders map[string]int
}

func NewPageStyle() *PageStyle {
	return &PageStyle{holders: make(map[string]int)}
}

// Acquire adds class to the page until the returned release is called.
// Calling release more than once has no further effect.
func (v *PageStyle) Acquire(class string) (release func()) {
	v.lock.Lock()
	v.holders[class]++
	v.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.lock.Lock()
			defer v.lock.Unlock()
			if v.holders[class]--; v.holders[class] <= 0 {
				delete(v.holders, class)
			}
		})
	}
}

func (v *PageStyle) Has(class string) bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.holders[class] > 0
}

func (v *PageStyle) Classes() []string {
	v.lock.Lock()
	defer v.lock.Unlock()
	classes := lo.Keys(v.holders)
	sort.Strings(classes)
	return classes
}

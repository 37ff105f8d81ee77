package utils

import (
	"sync"
)

var storeInstance *stringStoreImpl
var stringStoreInitializer sync.Once

// StringStore interns label strings so repeated tense/class/word labels
// across a corpus share one backing string. Lookups are case-sensitive:
// PRES and pres are different labels.
type StringStore interface {
	GetPointer(s string) *string
	GetPointers(ss []string) []*string
}

type stringStoreImpl struct {
	store sync.Map //map[string] *string
}

func (stringStore *stringStoreImpl) GetPointer(s string) *string {
	ptr, _ := stringStore.store.LoadOrStore(s, &s)
	return ptr.(*string)
}

func (stringStore *stringStoreImpl) GetPointers(ss []string) []*string {
	ptrs := make([]*string, len(ss))
	for i, s := range ss {
		ptrs[i] = stringStore.GetPointer(s)
	}
	return ptrs
}

func GlobalStringStore() StringStore {
	stringStoreInitializer.Do(func() {
		storeInstance = new(stringStoreImpl)
	})

	return storeInstance
}

// Package memory implements the entity store as mutex-guarded in-process
// maps. It is the authoritative store for this system: state lives for the
// process lifetime only and is reseeded from the bootstrap dataset on start.
package memory

import (
	"sync"
	"time"

	"github.com/menro-ph/waste-api/internal/models"
)

// Store holds one collection per entity type plus a single shared id counter.
// Ids are unique process-wide, not merely per collection: a resident and a
// waste report created back-to-back never share an id. All reads hand out
// copies; no live handle to stored state ever escapes.
type Store struct {
	mu     sync.Mutex
	nextID int64

	users         map[int64]models.User
	userOrder     []int64
	residents     map[int64]models.Resident
	residentOrder []int64
	reports       map[int64]models.WasteReport
	reportOrder   []int64
	schedules     map[int64]models.CollectionSchedule
	scheduleOrder []int64
	routes        map[int64]models.Route
	routeOrder    []int64
	contents      map[int64]models.EducationalContent
	contentOrder  []int64
	notifications map[int64]models.Notification
	notifOrder    []int64

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:         make(map[int64]models.User),
		residents:     make(map[int64]models.Resident),
		reports:       make(map[int64]models.WasteReport),
		schedules:     make(map[int64]models.CollectionSchedule),
		routes:        make(map[int64]models.Route),
		contents:      make(map[int64]models.EducationalContent),
		notifications: make(map[int64]models.Notification),
		now:           time.Now,
	}
}

// NewSeeded returns a store preloaded with the bootstrap dataset.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

// allocateID issues the next process-wide unique id. Callers must hold mu.
func (s *Store) allocateID() int64 {
	s.nextID++
	return s.nextID
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

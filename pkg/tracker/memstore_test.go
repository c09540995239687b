package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/store"
)

// memStore is an in-memory Persistence for engine tests.
type memStore struct {
	records map[string]store.Record
	appends int

	failReads  bool
	failWrites bool
}

var errStoreDown = errors.New("store unreachable")

func newMemStore() *memStore {
	return &memStore{records: make(map[string]store.Record)}
}

func (m *memStore) Read(ctx context.Context, path string) (store.Record, bool, error) {
	if m.failReads {
		return nil, false, errStoreDown
	}
	rec, ok := m.records[path]
	if !ok {
		return nil, false, nil
	}
	return copyRecord(rec), true, nil
}

func (m *memStore) Write(ctx context.Context, path string, rec store.Record) error {
	if m.failWrites {
		return errStoreDown
	}
	m.records[path] = copyRecord(rec)
	return nil
}

func (m *memStore) Merge(ctx context.Context, path string, partial store.Record) (store.Record, error) {
	current, _, err := m.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = store.Record{}
	}
	for k, v := range partial {
		current[k] = v
	}
	if err := m.Write(ctx, path, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (m *memStore) Append(ctx context.Context, prefix string, rec store.Record) (string, error) {
	m.appends++
	key := fmt.Sprintf("%s/log-%04d", prefix, m.appends)
	if err := m.Write(ctx, key, rec); err != nil {
		return "", err
	}
	return key, nil
}

func (m *memStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if m.failReads {
		return nil, errStoreDown
	}
	keys := make([]string, 0)
	for k := range m.records {
		if strings.HasPrefix(k, prefix+"/") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func copyRecord(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// testNow pins the suite to the evening of 2026-09-01 local time.
var testNow = time.Date(2026, time.September, 1, 20, 0, 0, 0, time.Local)

func newTestService(ms *memStore) *Service {
	return &Service{
		Persistence:      ms,
		Clock:            dates.Fixed(testNow),
		User:             "demo-user-001",
		Prefix:           "rauchfrei",
		DefaultPackPrice: 8.0,
		DefaultPerPack:   20,
	}
}

func entryPathFor(day dates.Day) string {
	return "rauchfrei_dailyEntries/demo-user-001/" + dates.Key(day)
}

func seedEntry(ms *memStore, day dates.Day, rec store.Record) {
	ms.records[entryPathFor(day)] = copyRecord(rec)
}

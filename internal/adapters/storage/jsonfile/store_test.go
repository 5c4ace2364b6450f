package jsonfile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credistore/credistore_backend/internal/adapters/storage/jsonfile"
	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
)

// memoryPersister captures persisted documents without touching disk.
type memoryPersister struct {
	doc        domain.BackupDocument
	found      bool
	loadErr    error
	persistErr error
	persists   int
}

func (m *memoryPersister) Load() (domain.BackupDocument, bool, error) {
	return m.doc, m.found, m.loadErr
}

func (m *memoryPersister) Persist(doc domain.BackupDocument) error {
	if m.persistErr != nil {
		return m.persistErr
	}
	m.doc = doc
	m.found = true
	m.persists++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewStartsEmptyWithoutPriorState(t *testing.T) {
	store, err := jsonfile.New(&memoryPersister{}, testLogger())
	require.NoError(t, err)

	state := store.Snapshot(context.Background())
	assert.Empty(t, state.Products)
	assert.Empty(t, state.Users)
	assert.NotNil(t, state.Products)
	assert.NotNil(t, state.Closures)
}

func TestNewRestoresPriorState(t *testing.T) {
	prior := domain.NewStoreState()
	prior.Products = append(prior.Products, domain.Product{
		UUID:  "p-1",
		Name:  "Arroz",
		Price: decimal.NewFromInt(50),
		Type:  domain.GranosBasicos,
	})
	persister := &memoryPersister{
		doc:   domain.BackupDocument{StoreState: prior, Version: domain.BackupVersion},
		found: true,
	}

	store, err := jsonfile.New(persister, testLogger())
	require.NoError(t, err)

	state := store.Snapshot(context.Background())
	require.Len(t, state.Products, 1)
	assert.Equal(t, "Arroz", state.Products[0].Name)
}

func TestNewFailsOnLoadError(t *testing.T) {
	persister := &memoryPersister{loadErr: errors.New("corrupt file")}
	_, err := jsonfile.New(persister, testLogger())
	assert.Error(t, err)
}

func TestUpdateWritesThrough(t *testing.T) {
	persister := &memoryPersister{}
	store, err := jsonfile.New(persister, testLogger())
	require.NoError(t, err)

	err = store.Update(context.Background(), func(state *domain.StoreState) error {
		state.Users = append(state.Users, domain.Customer{UUID: "c-1", Firstname: "Maria", Lastname: "Lopez"})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, persister.persists)
	require.Len(t, persister.doc.Users, 1)
	assert.Equal(t, "Maria", persister.doc.Users[0].Firstname)
	assert.Equal(t, domain.BackupVersion, persister.doc.Version)
	assert.NoError(t, store.LastPersistError())
}

func TestUpdateMutateErrorLeavesStateUntouched(t *testing.T) {
	persister := &memoryPersister{}
	store, err := jsonfile.New(persister, testLogger())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Update(context.Background(), func(state *domain.StoreState) error {
		state.Users = append(state.Users, domain.Customer{UUID: "c-1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	state := store.Snapshot(context.Background())
	assert.Empty(t, state.Users)
	assert.Equal(t, 0, persister.persists)
}

func TestUpdateSucceedsWhenPersistFails(t *testing.T) {
	diskErr := errors.New("disk full")
	persister := &memoryPersister{persistErr: diskErr}
	store, err := jsonfile.New(persister, testLogger())
	require.NoError(t, err)

	err = store.Update(context.Background(), func(state *domain.StoreState) error {
		state.Users = append(state.Users, domain.Customer{UUID: "c-1"})
		return nil
	})
	require.NoError(t, err)

	// In-memory state stays authoritative; the failure is only recorded.
	state := store.Snapshot(context.Background())
	assert.Len(t, state.Users, 1)
	assert.ErrorIs(t, store.LastPersistError(), diskErr)
	assert.ErrorIs(t, store.LastPersistError(), apperrors.ErrPersistence)
}

func TestSnapshotIsIsolated(t *testing.T) {
	store, err := jsonfile.New(nil, testLogger())
	require.NoError(t, err)

	err = store.Update(context.Background(), func(state *domain.StoreState) error {
		state.Products = append(state.Products, domain.Product{UUID: "p-1", Name: "Arroz", Stock: 10})
		return nil
	})
	require.NoError(t, err)

	snap := store.Snapshot(context.Background())
	snap.Products[0].Stock = 0
	snap.Products[0].Name = "changed"

	fresh := store.Snapshot(context.Background())
	assert.Equal(t, 10, fresh.Products[0].Stock)
	assert.Equal(t, "Arroz", fresh.Products[0].Name)
}

func TestFilePersisterRoundTrip(t *testing.T) {
	path := t.TempDir() + "/store/data.json"
	persister := jsonfile.NewFilePersister(path)

	_, found, err := persister.Load()
	require.NoError(t, err)
	assert.False(t, found)

	state := domain.NewStoreState()
	state.Products = append(state.Products, domain.Product{
		UUID:     "p-1",
		Name:     "Frijoles",
		Price:    decimal.NewFromInt(35),
		Type:     domain.GranosBasicos,
		Barcodes: []domain.Barcode{{Barcode: "750100001"}},
	})
	require.NoError(t, persister.Persist(domain.BackupDocument{StoreState: state, Version: domain.BackupVersion}))

	doc, found, err := persister.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "Frijoles", doc.Products[0].Name)
	assert.True(t, doc.Products[0].HasBarcode("750100001"))
	assert.Equal(t, domain.BackupVersion, doc.Version)
}

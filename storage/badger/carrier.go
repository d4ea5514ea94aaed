package badger

import (
	"bytes"
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/storage"
)

// CarrierRepository implements storage.CarrierRepository for BadgerDB.
type CarrierRepository struct {
	backend *Backend
}

var _ storage.CarrierRepository = (*CarrierRepository)(nil)

// NewCarrierRepository creates a new CarrierRepository.
func NewCarrierRepository(backend *Backend) (*CarrierRepository, error) {
	return &CarrierRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CarrierRepository has no resources to release.
func (r *CarrierRepository) Close() error {
	return nil
}

// AddCarriers adds one or more carriers to storage.
// Existing carriers with the same ID are overwritten along with their indexes.
func (r *CarrierRepository) AddCarriers(ctx context.Context, carriers ...*core.Carrier) ([]*core.Carrier, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, carrier := range carriers {
			// Use content-based ID if not set
			if carrier.ID == "" {
				carrier.ID = core.IDFromContent(carrier.Name)
			}

			if err := core.ValidateCarrier(carrier); err != nil {
				return err
			}

			// Drop stale index entries when overwriting
			old, err := readCarrier(tx, makeCarrierKey(carrier.ID))
			if err != nil {
				return err
			}
			if old != nil {
				if err := deleteIndexes(tx, old); err != nil {
					return err
				}
			}

			// Store primary document
			value, err := storage.MarshalCarrier(carrier)
			if err != nil {
				return err
			}
			if err := tx.Set(makeCarrierKey(carrier.ID), value); err != nil {
				return err
			}

			// Store type and lane indexes
			if err := writeIndexes(tx, carrier); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return carriers, err
}

// GetCarrier retrieves a single carrier by ID.
func (r *CarrierRepository) GetCarrier(ctx context.Context, id string) (*core.Carrier, error) {
	var result *core.Carrier
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readCarrier(tx, makeCarrierKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindCarriers retrieves carriers matching the filter, up to limit results.
// When both lane endpoints are present the lane index narrows the scan;
// a type-only filter uses the type index; otherwise all documents are
// scanned. Every candidate is still checked against the full filter.
func (r *CarrierRepository) FindCarriers(ctx context.Context, filter *core.SearchFilter, limit int) ([]*core.Carrier, error) {
	if filter == nil {
		filter = &core.SearchFilter{}
	}
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.Carrier
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var ids []string
		var scanAll bool

		switch {
		case filter.Origin != "" && filter.Destination != "":
			var err error
			ids, err = scanIndex(tx, makePartialCarrierLaneKey(filter.Origin, filter.Destination))
			if err != nil {
				return err
			}
		case filter.Type != "":
			var err error
			ids, err = scanIndex(tx, makePartialCarrierTypeKey(filter.Type))
			if err != nil {
				return err
			}
		default:
			scanAll = true
		}

		if scanAll {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(carrierPrefix + ":")
			iter := tx.NewIterator(opts)
			defer iter.Close()

			for iter.Rewind(); iter.Valid() && len(results) < limit; iter.Next() {
				var carrier *core.Carrier
				err := iter.Item().Value(func(val []byte) error {
					var err error
					carrier, err = storage.UnmarshalCarrier(val)
					return err
				})
				if err != nil {
					return err
				}
				if carrier != nil && filter.Matches(carrier) {
					results = append(results, carrier)
				}
			}
			return nil
		}

		for _, id := range ids {
			if len(results) >= limit {
				break
			}
			carrier, err := readCarrier(tx, makeCarrierKey(id))
			if err != nil {
				return err
			}
			if carrier != nil && filter.Matches(carrier) {
				results = append(results, carrier)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountCarriers returns the total number of stored carriers.
func (r *CarrierRepository) CountCarriers(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(carrierPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteCarriers removes carriers by their IDs.
func (r *CarrierRepository) DeleteCarriers(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCarrierKey(id)

			carrier, err := readCarrier(tx, key)
			if err != nil {
				return err
			}
			if carrier == nil {
				return storage.ErrNotFound
			}

			if err := deleteIndexes(tx, carrier); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// readCarrier reads a carrier from the transaction.
// Returns nil without error when the key does not exist.
func readCarrier(tx *badger.Txn, key []byte) (*core.Carrier, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var carrier *core.Carrier
	err = item.Value(func(val []byte) error {
		var err error
		carrier, err = storage.UnmarshalCarrier(val)
		return err
	})
	return carrier, err
}

// writeIndexes stores the type and lane index entries for a carrier.
// Index values hold the carrier ID so scans avoid parsing composite keys.
func writeIndexes(tx *badger.Txn, carrier *core.Carrier) error {
	for _, t := range carrier.Types {
		if err := tx.Set(makeCarrierTypeKey(t, carrier.ID), []byte(carrier.ID)); err != nil {
			return err
		}
	}
	for _, lane := range carrier.Lanes {
		if err := tx.Set(makeCarrierLaneKey(lane, carrier.ID), []byte(carrier.ID)); err != nil {
			return err
		}
	}
	return nil
}

// deleteIndexes removes the type and lane index entries for a carrier.
func deleteIndexes(tx *badger.Txn, carrier *core.Carrier) error {
	for _, t := range carrier.Types {
		if err := tx.Delete(makeCarrierTypeKey(t, carrier.ID)); err != nil {
			return err
		}
	}
	for _, lane := range carrier.Lanes {
		if err := tx.Delete(makeCarrierLaneKey(lane, carrier.ID)); err != nil {
			return err
		}
	}
	return nil
}

// scanIndex collects carrier IDs stored under an index prefix.
func scanIndex(tx *badger.Txn, prefix []byte) ([]string, error) {
	var ids []string

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		item := iter.Item()
		if !bytes.HasPrefix(item.Key(), prefix) {
			break
		}
		err := item.Value(func(val []byte) error {
			ids = append(ids, string(val))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

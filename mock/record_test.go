package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docmeta"
	"github.com/fwojciec/docmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateRecordFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *docmeta.Record
		w := &mock.RecordWriter{
			CreateRecordFn: func(_ context.Context, rec *docmeta.Record) error {
				calledWith = rec
				return nil
			},
		}

		rec := &docmeta.Record{
			Source:   "docs/index.html",
			Metadata: &docmeta.Metadata{Title: "Home"},
		}

		err := w.CreateRecord(context.Background(), rec)

		require.NoError(t, err)
		assert.Same(t, rec, calledWith)
	})

	t.Run("returns error from CreateRecordFn", func(t *testing.T) {
		t.Parallel()

		w := &mock.RecordWriter{
			CreateRecordFn: func(_ context.Context, _ *docmeta.Record) error {
				return errors.New("write failed")
			},
		}

		err := w.CreateRecord(context.Background(), &docmeta.Record{})

		assert.EqualError(t, err, "write failed")
	})
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	var deleted string
	s := &mock.RecordService{
		DeleteRecordFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	require.NoError(t, s.DeleteRecord(context.Background(), "abc"))
	assert.Equal(t, "abc", deleted)
}

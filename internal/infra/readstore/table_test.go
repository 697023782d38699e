//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/readstore"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/tests/common/builder"
	readstoremock "restaurant-reservations/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTableStore(t *testing.T) (*readstore.TableReadStore, *readstoremock.MockTableReadQueries, *mockDBTX) {
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockTableReadQueries(ctrl)
	mockDB := &mockDBTX{}
	return readstore.NewTableReadStore(mockQueries, mockDB), mockQueries, mockDB
}

func TestTableReadStore_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: free and occupied tables", func(t *testing.T) {
		store, mockQueries, mockDB := newTableStore(t)

		bar := builder.NewTableBuilder().WithID(1)
		patio := builder.NewTableBuilder().WithID(2).With(func(b *builder.TableBuilder) { b.Name = "Patio #2" }).WithCapacity(6).OccupiedBy(9)

		mockQueries.EXPECT().ListTables(ctx, mockDB).Return([]sqlc.Tables{bar.BuildInfra(), patio.BuildInfra()}, nil)

		got, err := store.FindAll(ctx)
		require.NoError(t, err)

		expected := []*queries.TableView{bar.BuildView(), patio.BuildView()}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("FindAll() mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, got[0].IsOccupied())
		assert.True(t, got[1].IsOccupied())
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries, mockDB := newTableStore(t)
		mockQueries.EXPECT().ListTables(ctx, mockDB).Return(nil, errDBConnectionLost)

		got, err := store.FindAll(ctx)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestTableReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnRow  sqlc.Tables
		returnErr  error
		expected   *queries.TableView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:      "success: table found",
			returnRow: builder.NewTableBuilder().WithID(3).BuildInfra(),
			expected:  builder.NewTableBuilder().WithID(3).BuildView(),
		},
		{name: "success: missing table yields nil", returnErr: pgx.ErrNoRows},
		{name: "error: database error", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mockQueries, mockDB := newTableStore(t)
			mockQueries.EXPECT().GetTableByID(ctx, mockDB, int64(3)).Return(tc.returnRow, tc.returnErr)

			got, err := store.FindByID(ctx, 3)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("FindByID() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

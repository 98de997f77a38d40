package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoadash/internal/dataset"
)

func TestStaticStoreReadYear(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	years, err := s.Years(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2023}, years)

	r, err := s.ReadYear(ctx, 2023)
	require.NoError(t, err)
	assert.Len(t, r.ExpenseCategories, 27)

	_, err = s.ReadYear(ctx, 2024)
	assert.ErrorIs(t, err, dataset.ErrYearNotFound)
}

func TestStoreHandsOutCopies(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	r, err := s.ReadYear(ctx, 2023)
	require.NoError(t, err)
	r.ExpenseCategories[0].Actual = decimal.NewFromInt(1)
	r.OutstandingFees = nil

	again, err := s.ReadYear(ctx, 2023)
	require.NoError(t, err)
	assert.True(t, again.ExpenseCategories[0].Actual.Equal(decimal.RequireFromString("4172231.74")))
	assert.Len(t, again.OutstandingFees, 8)
}

func TestStoreSaveYear(t *testing.T) {
	s := New()
	ctx := context.Background()

	r := dataset.Paraiso2023()
	r.Year = 2022
	require.NoError(t, s.SaveYear(ctx, r))

	years, _ := s.Years(ctx)
	assert.Equal(t, []int{2022}, years)

	r.ExpenseCategories[0].Variance = decimal.Zero
	assert.Error(t, s.SaveYear(ctx, r))
}

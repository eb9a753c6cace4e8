package pgstore

import (
	"context"
	"fmt"
	"testing"

	"inventorypos/models"
	"inventorypos/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNullableCash(t *testing.T) {
	received, change := nullableCash(&models.Transaksi{MetodeBayar: models.MetodeCash, UangDiterima: 30000, Kembalian: 5000})
	if assert.NotNil(t, received) && assert.NotNil(t, change) {
		assert.EqualValues(t, 30000, *received)
		assert.EqualValues(t, 5000, *change)
	}

	received, change = nullableCash(&models.Transaksi{MetodeBayar: models.MetodeCard, UangDiterima: 25000})
	assert.Nil(t, received)
	assert.Nil(t, change)
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
}

func TestGetTransaksiRejectsNonUUID(t *testing.T) {
	s := &Store{}
	_, err := s.GetTransaksi(context.Background(), "TRS001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTotalProduk(t *testing.T) {
	assert.Equal(t, 3, totalProduk([]models.TransaksiItem{{Jumlah: 2}, {Jumlah: 1}}))
	assert.Equal(t, 0, totalProduk(nil))
}

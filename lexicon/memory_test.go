package lexicon_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aruuz-ai/go-bahr/lexicon"
)

func TestLookupReturnsEmptyForUnknownWord(t *testing.T) {
	store := lexicon.NewMemoryStore(nil)
	entries, err := store.Lookup(context.Background(), "xyz", "xyz")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLookupPrefersExceptionsOverMaster(t *testing.T) {
	store := lexicon.NewMemoryStore([]lexicon.SeedRow{
		{Surface: "ہے", Taqti: "L", Source: lexicon.SourceMaster},
		{Surface: "ہے", Taqti: "S", Source: lexicon.SourceException},
	})
	entries, err := store.Lookup(context.Background(), "ہے", "ہے")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "S", entries[0].Taqti)
	assert.Equal(t, lexicon.SourceException, entries[0].Source)
}

func TestLookupExtendsMasterWithVariations(t *testing.T) {
	store := lexicon.NewMemoryStore([]lexicon.SeedRow{
		{Surface: "دل", Taqti: "M", Source: lexicon.SourceMaster},
		{Surface: "دل", Taqti: "V", Source: lexicon.SourceVariation},
	})
	entries, err := store.Lookup(context.Background(), "دل", "دل")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "M", entries[0].Taqti)
	assert.Equal(t, "V", entries[1].Taqti)
}

func TestLookupFallsBackToPluralsWhenNoMaster(t *testing.T) {
	store := lexicon.NewMemoryStore([]lexicon.SeedRow{
		{Surface: "کتابیں", Taqti: "P", Source: lexicon.SourcePlural},
	})
	entries, err := store.Lookup(context.Background(), "کتابیں", "کتابیں")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, lexicon.SourcePlural, entries[0].Source)
}

func TestLookupSynthesizesIDsForEveryEntry(t *testing.T) {
	store := lexicon.NewMemoryStore([]lexicon.SeedRow{
		{Surface: "دل", Taqti: "M", Source: lexicon.SourceMaster},
	})
	entries, err := store.Lookup(context.Background(), "دل", "دل")
	assert.NoError(t, err)
	assert.NotEmpty(t, entries[0].ID)
}

package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/pricing"
)

type memoryStorage struct {
	raw []byte
}

func (m *memoryStorage) Load() ([]byte, error) { return m.raw, nil }
func (m *memoryStorage) Save(raw []byte) error { m.raw = raw; return nil }

func testProduct(name string) models.Product {
	return models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Price:     85000,
		PriceUSD:  95,
		Sizes: []models.ProductSize{
			{Label: "50ml", Price: 65000, PriceUSD: 72},
		},
	}
}

func TestAddMergesSameProductAndSize(t *testing.T) {
	store := NewStore(nil)
	product := testProduct("Midnight Velvet")

	store.Add(product, 1, "50ml")
	store.Add(product, 2, "50ml")

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddDifferentSizesAreSeparateLines(t *testing.T) {
	store := NewStore(nil)
	product := testProduct("Midnight Velvet")

	store.Add(product, 1, "50ml")
	store.Add(product, 1, "100ml")

	assert.Len(t, store.Lines(), 2)
	assert.Equal(t, 2, store.ItemCount())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := NewStore(nil)
	product := testProduct("Royal Noir")

	store.Add(product, 2, "")
	store.UpdateQuantity(product.ID.String(), 0, "")

	assert.Empty(t, store.Lines())
	assert.False(t, store.Contains(product.ID.String(), ""))
}

func TestSubtotalUsesResolvedSizePrices(t *testing.T) {
	store := NewStore(nil)
	product := testProduct("Midnight Velvet")

	store.Add(product, 2, "50ml")

	assert.Equal(t, pricing.Pair{NGN: 130000, USD: 144}, store.Subtotal())
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := &memoryStorage{}
	store := NewStore(storage)
	product := testProduct("Azure Coast")
	store.Add(product, 2, "50ml")

	restored := NewStore(storage)
	lines := restored.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, product.ID, lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "50ml", lines[0].Size)
}

func TestCorruptStorageFallsBackToEmpty(t *testing.T) {
	storage := &memoryStorage{raw: []byte("{not json")}

	store := NewStore(storage)

	assert.Empty(t, store.Lines())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	store := NewStore(nil)
	product := testProduct("Noble Sage")

	var notified int
	unsubscribe := store.Subscribe(func(lines []Line) { notified = len(lines) })

	store.Add(product, 1, "")
	assert.Equal(t, 1, notified)

	unsubscribe()
	store.Clear()
	assert.Equal(t, 1, notified)
}

package storage

import (
	"errors"
	"sync"
	"testing"
	"time"

	"venue-market/market-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_VenueIDsIncrease(t *testing.T) {
	store := NewCatalogStore()

	var last int
	for i := 0; i < 5; i++ {
		venue := &domain.Venue{Name: "Cafe"}
		require.NoError(t, store.CreateVenue(venue))
		assert.Greater(t, venue.ID, last)
		last = venue.ID
	}

	venues, err := store.ListVenues()
	require.NoError(t, err)
	assert.Len(t, venues, 5)
	assert.Equal(t, 1, venues[0].ID)
	assert.Equal(t, 5, venues[4].ID)
}

func TestCatalogStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	store := NewCatalogStore()
	require.NoError(t, store.CreateVenue(&domain.Venue{Name: "Cafe"}))

	const workers = 50
	ids := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			product := &domain.Product{Name: "Tea", Price: 1}
			if err := store.CreateProduct(product); err == nil {
				ids <- product.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestCatalogStore_CreateProductDefaultsToFirstVenue(t *testing.T) {
	tests := []struct {
		name        string
		venues      int
		venueID     int
		wantVenueID int
		wantErr     error
	}{
		{name: "no venues", venues: 0, venueID: 0, wantErr: domain.ErrValidation},
		{name: "defaults to first venue", venues: 2, venueID: 0, wantVenueID: 1},
		{name: "explicit venue kept", venues: 2, venueID: 2, wantVenueID: 2},
		{name: "unknown explicit venue kept", venues: 1, venueID: 7, wantVenueID: 7},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := NewCatalogStore()
			for i := 0; i < testCase.venues; i++ {
				require.NoError(t, store.CreateVenue(&domain.Venue{Name: "V"}))
			}

			product := &domain.Product{Name: "Tea", Price: 2.5, VenueID: testCase.venueID}
			err := store.CreateProduct(product)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.EqualError(t, err, "No venue exists")
				all, _ := store.ListAllProducts()
				assert.Empty(t, all)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, product.ID)
			assert.Equal(t, testCase.wantVenueID, product.VenueID)
		})
	}
}

func TestCatalogStore_ListProductsFiltersByVenue(t *testing.T) {
	store := NewCatalogStore()
	require.NoError(t, store.CreateVenue(&domain.Venue{Name: "A"}))
	require.NoError(t, store.CreateVenue(&domain.Venue{Name: "B"}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Tea", VenueID: 1}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Coffee", VenueID: 2}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Cake", VenueID: 1}))

	products, err := store.ListProducts(1)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Tea", products[0].Name)
	assert.Equal(t, "Cake", products[1].Name)

	none, err := store.ListProducts(42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogStore_UpdateProduct(t *testing.T) {
	store := NewCatalogStore()
	require.NoError(t, store.CreateVenue(&domain.Venue{Name: "A"}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Tea", Price: 2.5, VenueID: 1}))

	updated, err := store.UpdateProduct(1, domain.ProductFields{Name: "Green tea", Price: 3, Image: "/img/tea.png"})
	require.NoError(t, err)
	assert.Equal(t, "Green tea", updated.Name)
	assert.Equal(t, 3.0, updated.Price)
	assert.Equal(t, 1, updated.VenueID, "zero venue_id must not overwrite")

	updated, err = store.UpdateProduct(1, domain.ProductFields{Name: "Green tea", Price: 3, VenueID: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.VenueID)

	_, err = store.UpdateProduct(99, domain.ProductFields{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product not found")
}

func TestCatalogStore_DeleteProduct(t *testing.T) {
	store := NewCatalogStore()
	require.NoError(t, store.CreateVenue(&domain.Venue{Name: "A"}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Tea"}))
	require.NoError(t, store.CreateProduct(&domain.Product{Name: "Coffee"}))

	err := store.DeleteProduct(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	all, _ := store.ListAllProducts()
	assert.Len(t, all, 2)

	require.NoError(t, store.DeleteProduct(2))
	all, _ = store.ListAllProducts()
	assert.Len(t, all, 1)

	_, err = store.GetProduct(2)
	assert.EqualError(t, err, "Product 2 not found")

	next := &domain.Product{Name: "Cake"}
	require.NoError(t, store.CreateProduct(next))
	assert.Equal(t, 3, next.ID, "deleted ids are not reused")
}

func TestOrderStore_CreateAssignsSequence(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("NSK", 7*3600))
	store := NewOrderStoreWithClock(func() time.Time { return fixed })

	for want := 1; want <= 3; want++ {
		order := &domain.Order{VenueID: 1, Items: []domain.OrderItem{{ProductID: 1, Quantity: 1}}}
		require.NoError(t, store.CreateOrder(order))
		assert.Equal(t, want, order.ID)
		assert.Equal(t, domain.OrderCode(want), order.QRCode)
		assert.Equal(t, time.UTC, order.CreatedAt.Location())
		assert.True(t, order.CreatedAt.Equal(fixed))
	}
}

func TestOrderStore_GetAndUpdateStatus(t *testing.T) {
	store := NewOrderStore()
	order := &domain.Order{VenueID: 1, Status: domain.StatusPaid, Items: []domain.OrderItem{{ProductID: 1, Quantity: 2}}}
	require.NoError(t, store.CreateOrder(order))

	got, err := store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, got.Status)

	got.Items[0].Quantity = 100
	again, _ := store.GetOrder(order.ID)
	assert.Equal(t, 2, again.Items[0].Quantity, "callers must not alias stored items")

	updated, err := store.UpdateStatus(order.ID, "served")
	require.NoError(t, err)
	assert.Equal(t, "served", updated.Status)

	_, err = store.GetOrder(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.UpdateStatus(404, "served")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOrderStore_ListOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(2 * time.Second), base.Add(2 * time.Second), base.Add(time.Second)}
	i := 0
	store := NewOrderStoreWithClock(func() time.Time {
		ts := times[i]
		i++
		return ts
	})

	for range times {
		require.NoError(t, store.CreateOrder(&domain.Order{VenueID: 1}))
	}

	orders, err := store.ListOrders()
	require.NoError(t, err)
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{2, 3, 4, 1}, ids, "ties keep insertion order")

	for k := 1; k < len(orders); k++ {
		assert.False(t, orders[k].CreatedAt.After(orders[k-1].CreatedAt))
	}

	again, err := store.ListOrders()
	require.NoError(t, err)
	assert.Equal(t, orders, again)
}

func TestOrderStore_ListOrdersEmpty(t *testing.T) {
	orders, err := NewOrderStore().ListOrders()
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

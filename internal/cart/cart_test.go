package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonshelf_back_end/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddOrIncrement(t *testing.T) {
	t.Run("nouvel article cree une ligne quantite 1", func(t *testing.T) {
		c := AddOrIncrement(models.Cart{}, "Batman #1", price("4.99"))

		require.Len(t, c, 1)
		assert.Equal(t, "Batman #1", c[0].IssueName)
		assert.Equal(t, 1, c[0].Quantity)
		assert.True(t, c[0].Price.Equal(price("4.99")))
	})

	t.Run("article existant incremente la quantite", func(t *testing.T) {
		c := AddOrIncrement(models.Cart{}, "Batman #1", price("4.99"))
		c = AddOrIncrement(c, "Batman #1", price("4.99"))

		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("le prix de la premiere insertion est conserve", func(t *testing.T) {
		c := AddOrIncrement(models.Cart{}, "Batman #1", price("4.99"))
		c = AddOrIncrement(c, "Batman #1", price("9.99"))

		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
		assert.True(t, c[0].Price.Equal(price("4.99")))
	})

	t.Run("les articles distincts gardent leur ordre d'ajout", func(t *testing.T) {
		c := AddOrIncrement(models.Cart{}, "Batman #1", price("4.99"))
		c = AddOrIncrement(c, "Spawn #1", price("3.50"))

		require.Len(t, c, 2)
		assert.Equal(t, "Batman #1", c[0].IssueName)
		assert.Equal(t, "Spawn #1", c[1].IssueName)
	})
}

func TestSetQuantity(t *testing.T) {
	base := func() models.Cart {
		return models.Cart{{IssueName: "Batman #1", Price: price("4.99"), Quantity: 2}}
	}

	t.Run("remplace la quantite d'une ligne existante", func(t *testing.T) {
		c := SetQuantity(base(), "Batman #1", 5)
		require.Len(t, c, 1)
		assert.Equal(t, 5, c[0].Quantity)
	})

	t.Run("ligne absente ne cree rien", func(t *testing.T) {
		c := SetQuantity(base(), "Spawn #1", 3)
		require.Len(t, c, 1)
		assert.Equal(t, "Batman #1", c[0].IssueName)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("quantite zero est rejetee sans supprimer la ligne", func(t *testing.T) {
		c := SetQuantity(base(), "Batman #1", 0)
		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("quantite negative est rejetee", func(t *testing.T) {
		c := SetQuantity(base(), "Batman #1", -4)
		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	t.Run("supprime uniquement la ligne visee", func(t *testing.T) {
		c := models.Cart{
			{IssueName: "Batman #1", Price: price("4.99"), Quantity: 1},
			{IssueName: "Spawn #1", Price: price("3.50"), Quantity: 2},
		}

		c = Remove(c, "Batman #1")

		require.Len(t, c, 1)
		assert.Equal(t, "Spawn #1", c[0].IssueName)
		assert.True(t, Total(c).Equal(price("7.00")))
	})

	t.Run("idempotent sur une ligne deja supprimee", func(t *testing.T) {
		c := models.Cart{{IssueName: "Batman #1", Price: price("4.99"), Quantity: 1}}

		c = Remove(c, "Batman #1")
		c = Remove(c, "Batman #1")

		assert.Empty(t, c)
	})
}

func TestTotal(t *testing.T) {
	t.Run("panier vide vaut zero", func(t *testing.T) {
		assert.True(t, Total(models.Cart{}).IsZero())
		assert.True(t, Total(nil).IsZero())
	})

	t.Run("somme quantite fois prix sans derive flottante", func(t *testing.T) {
		c := models.Cart{
			{IssueName: "Batman #1", Price: price("4.99"), Quantity: 3},
			{IssueName: "Spawn #1", Price: price("0.10"), Quantity: 3},
		}
		assert.Equal(t, "15.27", Total(c).StringFixed(2))
	})

	t.Run("scenario ajout double puis quantite 5", func(t *testing.T) {
		c := AddOrIncrement(models.Cart{}, "Batman #1", price("4.99"))
		c = AddOrIncrement(c, "Batman #1", price("4.99"))
		c = SetQuantity(c, "Batman #1", 5)

		assert.Equal(t, "24.95", Total(c).StringFixed(2))
	})
}

func TestCheckout(t *testing.T) {
	c := models.Cart{
		{IssueName: "Batman #1", Price: price("4.99"), Quantity: 5},
		{IssueName: "Spawn #1", Price: price("3.50"), Quantity: 1},
	}

	c = Checkout(c)

	assert.Empty(t, c)
	assert.True(t, Total(c).IsZero())
}

// Package cart contient la logique pure du panier : aucune E/S, aucune
// dépendance au stockage. Les handlers chargent le panier depuis la session,
// appliquent exactement une opération, puis sauvegardent le résultat.
package cart

import (
	"github.com/shopspring/decimal"

	"dungeonshelf_back_end/internal/models"
)

// AddOrIncrement ajoute une ligne {issueName, price, 1} si l'article est
// absent, sinon incrémente sa quantité de 1. Le prix de la première insertion
// est conservé : un appel ultérieur avec un prix différent ne le modifie pas.
func AddOrIncrement(c models.Cart, issueName string, price decimal.Decimal) models.Cart {
	for i := range c {
		if c[i].IssueName == issueName {
			c[i].Quantity++
			return c
		}
	}
	return append(c, models.CartLine{IssueName: issueName, Price: price, Quantity: 1})
}

// SetQuantity remplace la quantité d'une ligne existante. Une quantité nulle
// ou négative est rejetée sans toucher au panier : supprimer une ligne passe
// par Remove, jamais par une quantité à zéro. Ligne absente = aucun effet.
func SetQuantity(c models.Cart, issueName string, quantity int) models.Cart {
	if quantity < 1 {
		return c
	}
	for i := range c {
		if c[i].IssueName == issueName {
			c[i].Quantity = quantity
			break
		}
	}
	return c
}

// Remove supprime la ligne correspondante si elle existe. Idempotent.
func Remove(c models.Cart, issueName string) models.Cart {
	newCart := models.Cart{}
	for _, line := range c {
		if line.IssueName != issueName {
			newCart = append(newCart, line)
		}
	}
	return newCart
}

// Total recalcule la somme quantité × prix à chaque appel, jamais en cache.
func Total(c models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Checkout vide le panier sans condition. Aucune validation de stock ni de
// prix contre le catalogue n'est faite ici.
func Checkout(models.Cart) models.Cart {
	return models.Cart{}
}

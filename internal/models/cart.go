package models

import "github.com/shopspring/decimal"

// CartLine garde le prix capturé au moment de l'ajout, pas celui du catalogue.
type CartLine struct {
	IssueName string          `json:"issue_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart est une liste ordonnée de lignes, unique par issue_name.
type Cart []CartLine

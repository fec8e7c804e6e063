package models

import "github.com/shopspring/decimal"

type ComicIssue struct {
	IssueName string          `json:"issue_name"`
	Price     decimal.Decimal `json:"price"`
}

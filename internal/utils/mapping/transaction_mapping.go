package mapping

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		Member:          d.Member,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		Member:          m.Member,
		CategoryName:    m.CategoryName,
		CategoryType:    domain.CategoryType(m.CategoryType),
		CategoryIcon:    m.CategoryIcon,
		CategoryColor:   m.CategoryColor,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactions converts a slice of model Transaction to domain
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

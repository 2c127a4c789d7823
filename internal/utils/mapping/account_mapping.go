package mapping

import (
	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/models"
)

// ToModelAccount converts a domain.Account to its DB model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		Code:               d.Code,
		Name:               d.Name,
		AccountType:        models.AccountType(d.AccountType),
		ParentAccountID:    d.ParentAccountID,
		Description:        d.Description,
		IsActive:           d.IsActive,
		IsSystem:           d.IsSystem,
		AllowManualEntries: d.AllowManualEntries,
		DebitTotal:         d.DebitTotal,
		CreditTotal:        d.CreditTotal,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB model account to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		Code:               m.Code,
		Name:               m.Name,
		AccountType:        domain.AccountType(m.AccountType),
		ParentAccountID:    m.ParentAccountID,
		Description:        m.Description,
		IsActive:           m.IsActive,
		IsSystem:           m.IsSystem,
		AllowManualEntries: m.AllowManualEntries,
		DebitTotal:         m.DebitTotal,
		CreditTotal:        m.CreditTotal,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

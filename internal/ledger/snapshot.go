package ledger

import (
	"sort"

	"github.com/dmitrijs2005/gophbank/internal/models"
)

// Snapshot is the in-memory form of the three persisted collections.
// Transactions are kept in append order.
type Snapshot struct {
	Users        []*models.User
	Cards        []*models.Card
	Transactions []*models.Transaction
}

// UserByID returns the user with id, or nil.
func (s *Snapshot) UserByID(id string) *models.User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByEmail returns the user with email, or nil. The caller normalizes email.
func (s *Snapshot) UserByEmail(email string) *models.User {
	for _, u := range s.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// CardByNumber returns the card with the formatted number, or nil.
func (s *Snapshot) CardByNumber(number string) *models.Card {
	for _, c := range s.Cards {
		if c.Number == number {
			return c
		}
	}
	return nil
}

// CardsOf returns the cards owned by userID, default card first, then by
// issuance time.
func (s *Snapshot) CardsOf(userID string) []*models.Card {
	var out []*models.Card
	for _, c := range s.Cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DefaultCard returns the user's active default card, or nil.
func (s *Snapshot) DefaultCard(userID string) *models.Card {
	for _, c := range s.Cards {
		if c.UserID == userID && c.IsDefault && c.Active {
			return c
		}
	}
	return nil
}

// TransactionsOf returns the user's transactions, most recent first.
func (s *Snapshot) TransactionsOf(userID string) []*models.Transaction {
	var out []*models.Transaction
	for i := len(s.Transactions) - 1; i >= 0; i-- {
		if s.Transactions[i].UserID == userID {
			out = append(out, s.Transactions[i])
		}
	}
	return out
}

// Append adds tx to the log.
func (s *Snapshot) Append(tx ...*models.Transaction) {
	s.Transactions = append(s.Transactions, tx...)
}

// RemoveTransactionsOf drops the user's transactions and returns them.
func (s *Snapshot) RemoveTransactionsOf(userID string) []*models.Transaction {
	kept := s.Transactions[:0]
	var removed []*models.Transaction
	for _, t := range s.Transactions {
		if t.UserID == userID {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	s.Transactions = kept
	return removed
}

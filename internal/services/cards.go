package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// newCard creates a card for owner inside snap. The first card a user gets
// becomes the default one.
func (b *Bank) newCard(snap *ledger.Snapshot, owner *models.User, t models.CardType, now time.Time) (*models.Card, error) {
	number, err := newCardNumber(func(n string) bool { return snap.CardByNumber(n) != nil })
	if err != nil {
		return nil, err
	}
	cvv, err := newCVV()
	if err != nil {
		return nil, fmt.Errorf("cvv generation: %w", err)
	}

	card := &models.Card{
		ID:        newID(prefixCard),
		UserID:    owner.ID,
		Number:    number,
		Type:      t,
		Holder:    strings.ToUpper(owner.Name),
		Expiry:    now.AddDate(b.policy.CardValidityYears, 0, 0).Format("01/06"),
		CVV:       cvv,
		Active:    true,
		IsDefault: len(snap.CardsOf(owner.ID)) == 0,
		CreatedAt: now,
	}
	snap.Cards = append(snap.Cards, card)
	return card, nil
}

// IssueCard issues a new card of type t to the session user. A premium card
// lifts the user's tier to Premium.
func (b *Bank) IssueCard(ctx context.Context, t models.CardType) (*models.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidCardType, t)
	}

	now := b.now()
	var (
		issued models.Card
		fresh  *models.User
	)
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(cur.ID)
		if u == nil {
			return common.ErrUserNotFound
		}

		card, err := b.newCard(snap, u, t, now)
		if err != nil {
			return err
		}
		if t == models.CardTypePremium {
			u.Tier = models.TierPremium
		}
		snap.Append(newTransaction(u.ID, models.TransactionCardIssue, 0,
			fmt.Sprintf("Issued %s card", t), models.TransactionDetails{CardNumber: card.Number}, now))

		issued = *card
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "card issued", "user_id", fresh.ID, "type", t, "default", issued.IsDefault)
	b.session = fresh
	return &issued, nil
}

// FindCardByNumber looks a card up across all users. The number may contain
// spaces or dashes.
func (b *Bank) FindCardByNumber(ctx context.Context, number string) (*models.Card, error) {
	n, err := normalizeCardNumber(number)
	if err != nil {
		return nil, err
	}

	var found models.Card
	err = b.store.View(ctx, func(snap *ledger.Snapshot) error {
		c := snap.CardByNumber(n)
		if c == nil {
			return common.ErrCardNotFound
		}
		found = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// FindOwnerOfCard returns the holder of the card with number.
func (b *Bank) FindOwnerOfCard(ctx context.Context, number string) (*models.User, error) {
	n, err := normalizeCardNumber(number)
	if err != nil {
		return nil, err
	}

	var owner *models.User
	err = b.store.View(ctx, func(snap *ledger.Snapshot) error {
		c := snap.CardByNumber(n)
		if c == nil {
			return common.ErrCardNotFound
		}
		u := snap.UserByID(c.UserID)
		if u == nil {
			return common.ErrCardNotFound
		}
		owner = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owner, nil
}

// Cards lists the session user's cards, default card first.
func (b *Bank) Cards(ctx context.Context) ([]models.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}

	var cards []models.Card
	err = b.store.View(ctx, func(snap *ledger.Snapshot) error {
		for _, c := range snap.CardsOf(cur.ID) {
			cards = append(cards, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

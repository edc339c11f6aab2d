package services

import (
	"context"
	"math"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// TransferRequest asks to move Amount from FromUserID to Recipient, which is
// either an email address or a card number.
type TransferRequest struct {
	FromUserID string
	Recipient  string
	Amount     int64
}

// TransferReceipt describes a completed transfer.
type TransferReceipt struct {
	Amount        int64
	Fee           int64
	RecipientName string
	RecipientCard string
	CorrelationID string
	Balance       int64
}

// QuoteFee returns the fee a transfer of amount would cost.
func (b *Bank) QuoteFee(amount int64) (int64, error) {
	if amount <= 0 {
		return 0, common.ErrInvalidAmount
	}
	fee := b.policy.Fee.Fee(amount)
	if fee > math.MaxInt64-amount {
		return 0, common.ErrInvalidAmount
	}
	return fee, nil
}

// resolveRecipient finds the receiving user and card for identifier.
func (b *Bank) resolveRecipient(snap *ledger.Snapshot, identifier string) (*models.User, *models.Card, error) {
	identifier = strings.TrimSpace(identifier)

	if b.isEmail(identifier) {
		u := snap.UserByEmail(normalizeEmail(identifier))
		if u == nil {
			return nil, nil, common.ErrRecipientNotFound
		}
		card := snap.DefaultCard(u.ID)
		if card == nil {
			return nil, nil, common.ErrNoActiveCard
		}
		return u, card, nil
	}

	number, err := normalizeCardNumber(identifier)
	if err != nil {
		return nil, nil, err
	}
	card := snap.CardByNumber(number)
	if card == nil {
		return nil, nil, common.ErrCardNotFound
	}
	if !card.Active {
		return nil, nil, common.ErrNoActiveCard
	}
	u := snap.UserByID(card.UserID)
	if u == nil {
		return nil, nil, common.ErrCardNotFound
	}
	return u, card, nil
}

// Transfer moves money from the session user to another user. Both balances,
// both card mirrors and both log records are committed together; the fee is
// charged to the sender and credited to nobody.
func (b *Bank) Transfer(ctx context.Context, req TransferRequest) (*TransferReceipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}
	if req.FromUserID != cur.ID {
		return nil, common.ErrUnauthorized
	}
	if req.Amount <= 0 {
		return nil, common.ErrInvalidAmount
	}

	now := b.now()
	var (
		receipt TransferReceipt
		fresh   *models.User
	)
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		sender := snap.UserByID(cur.ID)
		if sender == nil {
			return common.ErrUnauthorized
		}

		recipient, toCard, err := b.resolveRecipient(snap, req.Recipient)
		if err != nil {
			return err
		}
		if recipient.ID == sender.ID {
			return common.ErrSelfTransfer
		}

		fee := b.policy.Fee.Fee(req.Amount)
		if req.Amount > sender.Balance || fee > sender.Balance-req.Amount {
			return common.ErrInsufficientFunds
		}
		if recipient.Balance > math.MaxInt64-req.Amount {
			return common.ErrInvalidAmount
		}

		fromCard := applyDelta(snap, sender, -(req.Amount + fee))
		recipient.Balance += req.Amount
		toCard.Balance += req.Amount

		corr := newID(prefixTransfer)
		out := newTransaction(sender.ID, models.TransactionTransferOut, -req.Amount,
			"Transfer to "+recipient.Name,
			models.TransactionDetails{CardNumber: toCard.Number, Counterparty: recipient.Name, Fee: fee}, now)
		in := newTransaction(recipient.ID, models.TransactionTransferIn, req.Amount,
			"Transfer from "+sender.Name,
			models.TransactionDetails{Counterparty: sender.Name}, now)
		if fromCard != nil {
			in.Details.CardNumber = fromCard.Number
		}
		out.CorrelationID = corr
		in.CorrelationID = corr
		snap.Append(out, in)

		receipt = TransferReceipt{
			Amount:        req.Amount,
			Fee:           fee,
			RecipientName: recipient.Name,
			RecipientCard: toCard.Number,
			CorrelationID: corr,
			Balance:       sender.Balance,
		}
		fresh = sender.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "transfer completed", "user_id", fresh.ID, "amount", receipt.Amount,
		"fee", receipt.Fee, "correlation_id", receipt.CorrelationID)
	b.session = fresh
	return &receipt, nil
}

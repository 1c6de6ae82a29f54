package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/internal/pricing"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
	"github.com/kasirhub/kasir-pos/pkg/logger"
	"github.com/kasirhub/kasir-pos/pkg/notify"
)

// TransactionService owns the transaction lifecycle: draft assembly,
// payment confirmation, cancellation and return. All pricing arithmetic is
// delegated to the pricing package; every mutating operation recomputes
// subtotal/discount/total before returning so the aggregate is never left
// inconsistent.
type TransactionService struct {
	txRepo      repository.TransactionRepository
	itemRepo    repository.TransactionItemRepository
	productRepo repository.ProductRepository
	cardRepo    repository.PaymentCardRepository
	notifier    notify.Notifier
	log         *logger.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
	productRepo repository.ProductRepository,
	cardRepo repository.PaymentCardRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:      txRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		cardRepo:    cardRepo,
		notifier:    notifier,
		log:         log,
	}
}

// CreateTransactionInput represents the create draft input
type CreateTransactionInput struct {
	CustomerName string
	CreatedBy    string
}

// CreateDraft opens a new empty transaction in draft state.
func (s *TransactionService) CreateDraft(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		Number:        fmt.Sprintf("TRX-%s", uuid.New().String()[:8]),
		CustomerName:  input.CustomerName,
		CreatedBy:     input.CreatedBy,
		Status:        enum.TransactionStatusDraft,
		PaymentStatus: enum.PaymentStatusPending,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransaction retrieves a transaction with its items.
func (s *TransactionService) GetTransaction(ctx context.Context, id uint) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions lists transactions with filtering.
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return s.txRepo.List(ctx, params)
}

// AddItem puts quantity of a product into a draft cart. If the product is
// already in the cart the quantities merge and the price/discount snapshot
// is refreshed from the current product record.
func (s *TransactionService) AddItem(ctx context.Context, txID, productID uint, quantity float64) (*entity.Transaction, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	var existing *entity.TransactionItem
	for i := range tx.Items {
		if tx.Items[i].ProductID == productID {
			existing = &tx.Items[i]
			break
		}
	}

	newQty := quantity
	if existing != nil {
		newQty += existing.Quantity
	}
	if err := validateQuantityUnit(product, newQty); err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity = newQty
		existing.ProductName = product.Name
		existing.Price = product.Price
		existing.Discount = product.Discount
		existing.SubTotal = pricing.ItemSubtotal(existing.Quantity, existing.Price)
		if err := s.itemRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		item := &entity.TransactionItem{
			TransactionID: tx.ID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      quantity,
			Price:         product.Price,
			Discount:      product.Discount,
			SubTotal:      pricing.ItemSubtotal(quantity, product.Price),
		}
		if err := s.itemRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	}

	s.invalidatePayment(tx)
	return s.recomputeAndSave(ctx, tx)
}

// UpdateItemQuantity changes an item's quantity. A quantity of zero or less
// removes the item; that is the defined behavior, not an error.
func (s *TransactionService) UpdateItemQuantity(ctx context.Context, txID, itemID uint, quantity float64) (*entity.Transaction, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, txID, itemID)
	}

	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TransactionID != tx.ID {
		return nil, apperror.NewNotFoundError("Transaction item")
	}

	// Product may have been removed from the catalog since the item was
	// added; unit validation is only possible while it still exists.
	if product, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
		if err := validateQuantityUnit(product, quantity); err != nil {
			return nil, err
		}
	}

	item.Quantity = quantity
	item.SubTotal = pricing.ItemSubtotal(item.Quantity, item.Price)
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidatePayment(tx)
	return s.recomputeAndSave(ctx, tx)
}

// RemoveItem deletes an item from a draft cart.
func (s *TransactionService) RemoveItem(ctx context.Context, txID, itemID uint) (*entity.Transaction, error) {
	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TransactionID != tx.ID {
		return nil, apperror.NewNotFoundError("Transaction item")
	}

	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}

	s.invalidatePayment(tx)
	return s.recomputeAndSave(ctx, tx)
}

// SetManualDiscount sets the promotional transaction-level discount. It
// stacks additively with per-item discounts and must not exceed the current
// subtotal.
func (s *TransactionService) SetManualDiscount(ctx context.Context, txID uint, amount int64) (*entity.Transaction, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Discount must not be negative")
	}

	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByTransaction(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	subTotal := pricing.Subtotal(s.pricingLines(ctx, items))
	if amount > subTotal {
		return nil, apperror.NewBadRequestError("Discount must not exceed the subtotal")
	}

	tx.Discount = amount
	return s.recomputeAndSave(ctx, tx)
}

// SetCustomerName attaches an optional customer name to a draft.
func (s *TransactionService) SetCustomerName(ctx context.Context, txID uint, name string) (*entity.Transaction, error) {
	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}
	tx.CustomerName = name
	return s.recomputeAndSave(ctx, tx)
}

// ConfirmPaymentInput represents the confirm payment input
type ConfirmPaymentInput struct {
	Method        string
	PaymentCardID *uint
	Tendered      int64 // cash received, smallest currency unit
}

// ConfirmPayment finalizes a draft: the transaction becomes completed/paid,
// product stock and sold counters are adjusted and a success notification is
// emitted. A second call on the same transaction fails because it is no
// longer a draft.
//
// Stock updates are applied per item. If one product update fails the
// failure is logged and the remaining updates still run; the sale itself
// always completes. There is no rollback of already-applied updates.
func (s *TransactionService) ConfirmPayment(ctx context.Context, txID uint, input *ConfirmPaymentInput) (*entity.Transaction, error) {
	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}
	if len(tx.Items) == 0 {
		return nil, apperror.NewBadRequestError("Transaction has no items")
	}
	if !enum.ValidPaymentMethod(input.Method) {
		return nil, apperror.NewBadRequestError("Unknown payment method: " + input.Method)
	}
	if input.PaymentCardID != nil {
		card, err := s.cardRepo.GetByID(ctx, *input.PaymentCardID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			return nil, apperror.NewNotFoundError("Payment card")
		}
	}

	// Recompute with live product discounts before checking the tendered
	// amount.
	items, err := s.itemRepo.ListByTransaction(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	lines := s.pricingLines(ctx, items)
	tx.SubTotal = pricing.Subtotal(lines)
	tx.Total = pricing.Total(lines, tx.Discount)

	if input.Method == enum.PaymentMethodCash && input.Tendered < tx.Total {
		return nil, &apperror.InsufficientPaymentError{Shortfall: tx.Total - input.Tendered}
	}

	now := time.Now()
	tx.Status = enum.TransactionStatusCompleted
	tx.PaymentStatus = enum.PaymentStatusPaid
	tx.PaymentMethod = input.Method
	tx.PaymentCardID = input.PaymentCardID
	tx.PaidAt = &now

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := s.productRepo.RecordSale(ctx, item.ProductID, item.Quantity); err != nil {
			s.log.Warn("stock update failed after payment",
				"transaction", tx.Number,
				"product_id", item.ProductID,
				"quantity", item.Quantity,
				"error", err,
			)
		}
	}

	s.notifier.TransactionSucceeded(ctx, notify.TransactionEvent{
		TransactionID: tx.ID,
		Number:        tx.Number,
		Total:         tx.Total,
		PaymentMethod: tx.PaymentMethod,
		CustomerName:  tx.CustomerName,
	})

	return tx, nil
}

// CancelDraft soft-cancels a draft: the transaction and its items are kept
// for audit with cancelled status.
func (s *TransactionService) CancelDraft(ctx context.Context, txID uint) (*entity.Transaction, error) {
	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return nil, err
	}

	tx.Status = enum.TransactionStatusCancelled
	tx.PaymentStatus = enum.PaymentStatusCancelled
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteDraft hard-cancels a draft: the transaction and all its items are
// removed permanently.
func (s *TransactionService) DeleteDraft(ctx context.Context, txID uint) error {
	tx, err := s.getDraft(ctx, txID)
	if err != nil {
		return err
	}
	return s.txRepo.DeleteWithItems(ctx, tx.ID)
}

// MarkReturn flags a completed transaction as returned. Stock and sold
// counters are deliberately not reversed.
func (s *TransactionService) MarkReturn(ctx context.Context, txID uint) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetWithItems(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if tx.Status != enum.TransactionStatusCompleted {
		return nil, apperror.NewConflictError("Only completed transactions can be returned")
	}

	tx.Status = enum.TransactionStatusReturn
	tx.PaymentStatus = enum.PaymentStatusReturn
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete permanently removes a cancelled or returned transaction together
// with its items.
func (s *TransactionService) Delete(ctx context.Context, txID uint) error {
	tx, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return err
	}
	if tx == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	if !tx.IsDeletable() {
		return apperror.NewConflictError("Only cancelled or returned transactions can be deleted")
	}
	return s.txRepo.DeleteWithItems(ctx, tx.ID)
}

// getDraft loads a transaction with items and ensures it is still mutable.
func (s *TransactionService) getDraft(ctx context.Context, txID uint) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetWithItems(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if !tx.IsDraft() {
		return nil, apperror.NewConflictError("Transaction is no longer a draft")
	}
	return tx, nil
}

// invalidatePayment clears any payment method captured before the cart was
// modified again.
func (s *TransactionService) invalidatePayment(tx *entity.Transaction) {
	tx.PaymentMethod = ""
	tx.PaymentCardID = nil
}

// pricingLines builds the pricing view of the items. The current product
// discount wins over the stored snapshot while the cart is open, so catalog
// discount changes apply to drafts immediately.
func (s *TransactionService) pricingLines(ctx context.Context, items []entity.TransactionItem) []pricing.Line {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		percent := item.Discount
		if product, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
			percent = product.Discount
		}
		lines[i] = pricing.Line{
			Quantity:        item.Quantity,
			Price:           item.Price,
			DiscountPercent: percent,
			SubTotal:        item.SubTotal,
		}
	}
	return lines
}

// recomputeAndSave refreshes the aggregate totals from current items and
// persists the transaction.
func (s *TransactionService) recomputeAndSave(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	items, err := s.itemRepo.ListByTransaction(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	lines := s.pricingLines(ctx, items)
	tx.SubTotal = pricing.Subtotal(lines)
	tx.Total = pricing.Total(lines, tx.Discount)
	tx.Items = items

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// validateQuantityUnit rejects fractional quantities for products sold in
// discrete units.
func validateQuantityUnit(product *entity.Product, quantity float64) error {
	if !product.Fractional && quantity != math.Trunc(quantity) {
		return apperror.NewBadRequestError("Product " + product.Name + " is sold in whole units")
	}
	return nil
}

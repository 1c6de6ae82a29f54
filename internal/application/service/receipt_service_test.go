package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
)

// completeSale drives a full sale so the receipt has something to show:
// 2 x 15,000 + 1 x 20,000 with a 5,000 manual discount = 45,000.
func completeSale(t *testing.T, env *testEnv) *entity.Transaction {
	t.Helper()
	ctx := context.Background()

	a := env.seedProduct(t, "Product A", 15000)
	b := env.seedProduct(t, "Product B", 20000)

	draft, err := env.tx.CreateDraft(ctx, &CreateTransactionInput{CustomerName: "Budi"})
	require.NoError(t, err)
	_, err = env.tx.AddItem(ctx, draft.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = env.tx.AddItem(ctx, draft.ID, b.ID, 1)
	require.NoError(t, err)
	_, err = env.tx.SetManualDiscount(ctx, draft.ID, 5000)
	require.NoError(t, err)

	paid, err := env.tx.ConfirmPayment(ctx, draft.ID, &ConfirmPaymentInput{
		Method: enum.PaymentMethodCash, Tendered: 50000,
	})
	require.NoError(t, err)
	return paid
}

// totalFromStream extracts the amount on the "TOTAL" line of an ESC/POS
// stream and parses it back to the smallest currency unit.
func totalFromStream(t *testing.T, data []byte) int64 {
	t.Helper()
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "TOTAL") {
			continue
		}
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		amount := strings.ReplaceAll(fields[1], ",", "")
		if idx := strings.IndexByte(amount, '.'); idx >= 0 {
			amount = amount[:idx]
		}
		v, err := strconv.ParseInt(amount, 10, 64)
		require.NoError(t, err)
		return v
	}
	t.Fatal("no TOTAL line in stream")
	return 0
}

func TestReceiptService_BuildReceipt(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	tx := completeSale(t, env)

	receipt, err := env.receipts.BuildReceipt(ctx, tx.ID)
	require.NoError(t, err)

	assert.Equal(t, "TOKO KASIR", receipt.Header.StoreName)
	assert.Equal(t, tx.Number, receipt.Number)
	assert.Equal(t, "Budi", receipt.Customer)
	assert.Equal(t, int64(50000), receipt.SubTotal)
	assert.Equal(t, int64(5000), receipt.Discount)
	assert.Equal(t, int64(45000), receipt.Total)
	assert.Equal(t, "Tunai", receipt.PaymentLabel)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Product A", receipt.Items[0].Name)

	// Default footer applies while ShowFooter is on with no custom message.
	require.Len(t, receipt.Footer, 2)

	t.Run("missing transaction", func(t *testing.T) {
		_, err := env.receipts.BuildReceipt(ctx, 9999)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestReceiptService_EncodeReceipt(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	tx := completeSale(t, env)

	data, err := env.receipts.EncodeReceipt(ctx, tx.ID)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "STRUK PEMBELIAN")
	assert.Contains(t, text, "TOKO KASIR")
	assert.Contains(t, text, "Product A")
	assert.Contains(t, text, "SUBTOTAL")
	assert.Contains(t, text, "DISKON")

	// The printed total survives a round trip through the formatter.
	assert.Equal(t, int64(45000), totalFromStream(t, data))

	// Stream ends with feed and cut.
	assert.Equal(t, byte(0x00), data[len(data)-1])
	assert.Equal(t, byte('V'), data[len(data)-2])
}

func TestReceiptService_EncodeReceipt_NoDiscountLine(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Product A", 15000)
	draft, err := env.tx.CreateDraft(ctx, &CreateTransactionInput{})
	require.NoError(t, err)
	_, err = env.tx.AddItem(ctx, draft.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = env.tx.ConfirmPayment(ctx, draft.ID, &ConfirmPaymentInput{
		Method: enum.PaymentMethodCash, Tendered: 15000,
	})
	require.NoError(t, err)

	data, err := env.receipts.EncodeReceipt(ctx, draft.ID)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "DISKON")
}

func TestReceiptService_RenderHTML(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	tx := completeSale(t, env)

	doc, err := env.receipts.RenderHTML(ctx, tx.ID)
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "STRUK PEMBELIAN")
	assert.Contains(t, doc, "TOKO KASIR")
	assert.Contains(t, doc, "Product A")
	assert.Contains(t, doc, "45,000.00")
	assert.Contains(t, doc, tx.Number)
}

func TestReceiptService_CustomTemplate(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.settings.UpdateTemplate(ctx, &TemplateInput{
		StoreName:     "WARUNG MAJU",
		Address:       "Jl. Sudirman 1",
		FooterMessage: "Sampai jumpa lagi",
		ShowFooter:    true,
		LogoWidth:     200,
		LogoHeight:    80,
	})
	require.NoError(t, err)

	tx := completeSale(t, env)
	data, err := env.receipts.EncodeReceipt(ctx, tx.ID)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "WARUNG MAJU")
	assert.Contains(t, text, "Jl. Sudirman 1")
	assert.Contains(t, text, "Sampai jumpa lagi")
	assert.NotContains(t, text, "TOKO KASIR")
}

func TestReceiptService_CardPaymentLabel(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	card, err := env.settings.CreatePaymentCard(ctx, "BCA Debit", enum.PaymentMethodCard)
	require.NoError(t, err)

	product := env.seedProduct(t, "Product A", 15000)
	draft, err := env.tx.CreateDraft(ctx, &CreateTransactionInput{})
	require.NoError(t, err)
	_, err = env.tx.AddItem(ctx, draft.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = env.tx.ConfirmPayment(ctx, draft.ID, &ConfirmPaymentInput{
		Method: enum.PaymentMethodCard, PaymentCardID: &card.ID,
	})
	require.NoError(t, err)

	receipt, err := env.receipts.BuildReceipt(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "BCA Debit", receipt.PaymentLabel)
}

func TestReceiptService_TestPrint(t *testing.T) {
	env := setupEnv(t)

	receipt, err := env.receipts.TestPrint()
	require.NoError(t, err)
	assert.Equal(t, "TEST-001", receipt.Number)
	assert.Equal(t, int64(10000), receipt.Total)
}

func TestReceiptService_GetStatus(t *testing.T) {
	env := setupEnv(t)

	status := env.receipts.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Type)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
)

func TestSettingsService_Template(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("first read seeds defaults", func(t *testing.T) {
		tpl, err := env.settings.GetTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "TOKO KASIR", tpl.StoreName)
		assert.True(t, tpl.ShowFooter)
	})

	t.Run("update persists", func(t *testing.T) {
		_, err := env.settings.UpdateTemplate(ctx, &TemplateInput{
			StoreName: "WARUNG MAJU", LogoWidth: 300, LogoHeight: 100,
		})
		require.NoError(t, err)

		tpl, err := env.settings.GetTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "WARUNG MAJU", tpl.StoreName)
		assert.Equal(t, 300, tpl.LogoWidth)
	})

	t.Run("store name is required", func(t *testing.T) {
		_, err := env.settings.UpdateTemplate(ctx, &TemplateInput{
			LogoWidth: 200, LogoHeight: 80,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("logo dimensions are bounded", func(t *testing.T) {
		_, err := env.settings.UpdateTemplate(ctx, &TemplateInput{
			StoreName: "X", LogoWidth: 49, LogoHeight: 80,
		})
		require.Error(t, err)

		_, err = env.settings.UpdateTemplate(ctx, &TemplateInput{
			StoreName: "X", LogoWidth: 200, LogoHeight: 301,
		})
		require.Error(t, err)
	})
}

func TestSettingsService_Display(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("first read seeds defaults", func(t *testing.T) {
		settings, err := env.settings.GetDisplay(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, settings.DecimalPlaces)
		assert.Equal(t, "DD/MM/YYYY", settings.DateFormat)
	})

	t.Run("update persists", func(t *testing.T) {
		settings, err := env.settings.UpdateDisplay(ctx, 0, "YYYY-MM-DD")
		require.NoError(t, err)
		assert.Equal(t, 0, settings.DecimalPlaces)
		assert.Equal(t, "YYYY-MM-DD", settings.DateFormat)
	})

	t.Run("decimal places are bounded", func(t *testing.T) {
		_, err := env.settings.UpdateDisplay(ctx, 5, "")
		require.Error(t, err)
	})
}

func TestSettingsService_PaymentCards(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		card, err := env.settings.CreatePaymentCard(ctx, "BCA Debit", enum.PaymentMethodCard)
		require.NoError(t, err)
		assert.NotZero(t, card.ID)

		cards, err := env.settings.ListPaymentCards(ctx)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("cash is not a card method", func(t *testing.T) {
		_, err := env.settings.CreatePaymentCard(ctx, "Kas", enum.PaymentMethodCash)
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		card, err := env.settings.CreatePaymentCard(ctx, "Mandiri", enum.PaymentMethodTransfer)
		require.NoError(t, err)
		require.NoError(t, env.settings.DeletePaymentCard(ctx, card.ID))

		err = env.settings.DeletePaymentCard(ctx, card.ID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

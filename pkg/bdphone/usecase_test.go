package bdphone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bdphone/pkg/bdphone"
)

func TestValidateForUseCase(t *testing.T) {
	t.Parallel()

	const (
		mobile   = "01712345678"
		landline = "0212345678"
	)

	t.Run("registration accepts landline without sms capability", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase(landline, bdphone.UseCaseRegistration)
		require.True(t, res.Valid)
		assert.Equal(t, bdphone.TypeLandline, res.Type)
		assert.False(t, res.SMSCapable)
	})

	t.Run("registration flags mobile sms capable", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase(mobile, bdphone.UseCaseRegistration)
		require.True(t, res.Valid)
		assert.True(t, res.SMSCapable)
	})

	t.Run("otp rejects landline with MOBILE_ONLY", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase(landline, bdphone.UseCaseOTP)
		require.False(t, res.Valid)
		require.NotNil(t, res.Err)
		assert.Equal(t, bdphone.CodeMobileOnly, res.Err.Code)
		assert.NotEmpty(t, res.Err.LocalizedMessage)
	})

	t.Run("sms rejects landline with MOBILE_ONLY", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase(landline, bdphone.UseCaseSMS)
		require.False(t, res.Valid)
		assert.Equal(t, bdphone.CodeMobileOnly, res.Err.Code)
	})

	t.Run("otp accepts mobile", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase(mobile, bdphone.UseCaseOTP)
		require.True(t, res.Valid)
		assert.True(t, res.SMSCapable)
	})

	t.Run("verification flags both types verifiable", func(t *testing.T) {
		t.Parallel()
		for _, phone := range []string{mobile, landline} {
			res := bdphone.ValidateForUseCase(phone, bdphone.UseCaseVerification)
			require.True(t, res.Valid, phone)
			assert.True(t, res.Verifiable, phone)
		}
	})

	t.Run("classification errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		res := bdphone.ValidateForUseCase("0191428753", bdphone.UseCaseOTP)
		require.False(t, res.Valid)
		assert.Equal(t, bdphone.CodeInvalidMobileFormat, res.Err.Code)
	})
}

package registro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusPending, StatusOf(nil))
	assert.Equal(t, StatusApproved, StatusOf(boolPtr(true)))
	assert.Equal(t, StatusRejected, StatusOf(boolPtr(false)))
}

func TestRegistro_Status(t *testing.T) {
	t.Run("pending record is neither approved nor rejected", func(t *testing.T) {
		r := Registro{RFC: "ABC010101AAA", Nombre: "Acme SA", Periodo: "2024-01"}
		assert.Equal(t, StatusPending, r.Status())
		assert.False(t, r.IsApproved())
		assert.False(t, r.IsRejected())
	})

	t.Run("approved record", func(t *testing.T) {
		r := Registro{RFC: "ABC010101AAA", Aprobacion: boolPtr(true)}
		assert.True(t, r.IsApproved())
		assert.False(t, r.IsRejected())
	})

	t.Run("rejected record", func(t *testing.T) {
		r := Registro{RFC: "ABC010101AAA", Aprobacion: boolPtr(false)}
		assert.False(t, r.IsApproved())
		assert.True(t, r.IsRejected())
	})
}

func TestValidateRFC(t *testing.T) {
	valid := []string{
		"ABC010101AAA",
		"abc010101aaa",
		" ABC010101AA ",
		"ñab010101aa1",
		"ABCD010101AAA",
		"ÑÑÑÑ010101AAA", // 13 runes, more bytes
	}
	for _, rfc := range valid {
		t.Run(rfc, func(t *testing.T) {
			assert.NoError(t, ValidateRFC(rfc))
		})
	}

	t.Run("rejects empty", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRFC(""), ErrRFCRequired)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRFC("   "), ErrRFCRequired)
	})

	t.Run("rejects oversized", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRFC(strings.Repeat("A", 14)), ErrRFCTooLong)
	})

	t.Run("padding counts toward the width", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRFC(" ABCD010101AAA"), ErrRFCTooLong)
	})
}

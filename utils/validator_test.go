package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	CompanyName   string `json:"company_name" validate:"notblank" label:"Company name"`
	ContactNumber string `json:"contact_number" validate:"notblank,phone_ph" label:"Contact number"`
	EmailAddress  string `json:"email_address" validate:"notblank,email_shape" label:"Email address"`
	Status        string `json:"status" validate:"omitempty,company_status" label:"Status"`
}

func validForm() contactForm {
	return contactForm{
		CompanyName:   "Acme Corp",
		ContactNumber: "091812186912",
		EmailAddress:  "a@b.co",
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(validForm()))
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		form contactForm
		want string
	}{
		{"empty name", contactForm{ContactNumber: "091812186912", EmailAddress: "a@b.co"}, "Company name is required"},
		{"whitespace name", contactForm{CompanyName: "   ", ContactNumber: "091812186912", EmailAddress: "a@b.co"}, "Company name is required"},
		{"empty number", contactForm{CompanyName: "Acme", EmailAddress: "a@b.co"}, "Contact number is required"},
		{"empty email", contactForm{CompanyName: "Acme", ContactNumber: "091812186912"}, "Email address is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidateStruct_RequiredBeforeFormat(t *testing.T) {
	// A bad phone plus a missing email must report the missing field, not
	// the format violation.
	form := validForm()
	form.ContactNumber = "123"
	form.EmailAddress = ""

	err := ValidateStruct(form)
	require.Error(t, err)
	assert.Equal(t, "Email address is required", err.Error())
}

func TestValidateStruct_Phone(t *testing.T) {
	accept := []string{"099181218691", "091812186912"}
	for _, number := range accept {
		form := validForm()
		form.ContactNumber = number
		assert.NoError(t, ValidateStruct(form), number)
	}

	reject := []string{
		"09918121869",   // 09 + 9 digits
		"081812186912",  // wrong prefix
		"0918121869123", // too long
		"09a1812186912", // non-digit
		"0991812186 12", // embedded space
	}
	for _, number := range reject {
		form := validForm()
		form.ContactNumber = number
		err := ValidateStruct(form)
		require.Error(t, err, number)
		assert.Equal(t, PhoneFormatMessage, err.Error(), number)
	}
}

func TestValidateStruct_Email(t *testing.T) {
	accept := []string{"a@b.co", "first.last@example.com", "x+y@sub.domain.org"}
	for _, email := range accept {
		form := validForm()
		form.EmailAddress = email
		assert.NoError(t, ValidateStruct(form), email)
	}

	reject := []string{"a@b", "a.b.com", "a @b.co", "@b.co"}
	for _, email := range reject {
		form := validForm()
		form.EmailAddress = email
		err := ValidateStruct(form)
		require.Error(t, err, email)
		assert.Equal(t, "Invalid email address", err.Error(), email)
	}
}

func TestValidateStruct_StatusEnum(t *testing.T) {
	for _, status := range []string{"", "Active", "Inactive", "Pending"} {
		form := validForm()
		form.Status = status
		assert.NoError(t, ValidateStruct(form), status)
	}

	form := validForm()
	form.Status = "Archived"
	err := ValidateStruct(form)
	require.Error(t, err)
	assert.Equal(t, "Invalid status", err.Error())
}

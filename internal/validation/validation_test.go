package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var accountSchema = Schema{
	{Name: "name", Label: "Name", Rules: []Rule{Presence(), MaxLength(50)}},
	{Name: "email", Label: "Email", Rules: []Rule{Presence(), EmailFormat()}},
	{Name: "password", Label: "Password", Rules: []Rule{Presence(), MinLength(6)}},
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		values map[string]string
		want   []string
	}{
		{
			name:   "all blank reports every violated rule",
			values: map[string]string{},
			want: []string{
				"Name can't be blank",
				"Email can't be blank",
				"Email is invalid",
				"Password can't be blank",
				"Password is too short (minimum is 6 characters)",
			},
		},
		{
			name:   "whitespace name is blank",
			values: map[string]string{"name": "   ", "email": "a@b.com", "password": "foobar"},
			want:   []string{"Name can't be blank"},
		},
		{
			name:   "long name",
			values: map[string]string{"name": strings.Repeat("a", 51), "email": "a@b.com", "password": "foobar"},
			want:   []string{"Name is too long (maximum is 50 characters)"},
		},
		{
			name:   "short password",
			values: map[string]string{"name": "Example", "email": "a@b.com", "password": "abc"},
			want:   []string{"Password is too short (minimum is 6 characters)"},
		},
		{
			name:   "valid",
			values: map[string]string{"name": "Example User", "email": "USER@foo.COM", "password": "foobar"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(accountSchema, tt.values))
		})
	}
}

func TestEmailFormat(t *testing.T) {
	v := New()
	schema := Schema{{Name: "email", Label: "Email", Rules: []Rule{EmailFormat()}}}

	valid := []string{"user@foo.COM", "A_US-ER@f.b.org", "frst.lst@foo.jp", "a+b@baz.cn"}
	for _, addr := range valid {
		assert.Empty(t, v.Validate(schema, map[string]string{"email": addr}), addr)
	}

	invalid := []string{"user@foo,com", "user_at_foo.org", "example.user@foo.", "foo@bar_baz.com", "foo@bar+baz.com"}
	for _, addr := range invalid {
		assert.Equal(t, []string{"Email is invalid"}, v.Validate(schema, map[string]string{"email": addr}), addr)
	}
}

func TestValidator_Confirm(t *testing.T) {
	v := New()

	msg, ok := v.Confirm("Password", "hahahaha", "")
	assert.False(t, ok)
	assert.Equal(t, "Password confirmation doesn't match Password", msg)

	msg, ok = v.Confirm("Password", "hahahaha", "mismatch")
	assert.False(t, ok)
	assert.Equal(t, "Password confirmation doesn't match Password", msg)

	_, ok = v.Confirm("Password", "hahahaha", "hahahaha")
	assert.True(t, ok)
}

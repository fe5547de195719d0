package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	var absent Optional[string]
	assert.False(t, absent.Present)
	assert.Equal(t, "fallback", absent.Or("fallback"))

	empty := Some("")
	assert.True(t, empty.Present)
	assert.Equal(t, "", empty.Or("fallback"))
}

func TestMerge(t *testing.T) {
	current := User{ID: 4, Name: "Ada", Email: "ada@example.com", Birthdate: "10-12-1915", AddressID: 7}

	draft := Merge(current, Input{Email: Some("ADA@Lovelace.org"), Params: 1})

	assert.Equal(t, Draft{
		Name:      "Ada",
		Email:     "ADA@Lovelace.org",
		Birthdate: "10-12-1915",
		AddressID: "7",
	}, draft)

	all := Merge(current, Input{
		Name:      Some("Grace"),
		Email:     Some("grace@navy.mil"),
		Birthdate: Some("09-12-1906"),
		AddressID: Some("12"),
		Params:    4,
	})
	assert.Equal(t, Draft{Name: "Grace", Email: "grace@navy.mil", Birthdate: "09-12-1906", AddressID: "12"}, all)
}

func TestMerge_PresentButEmptyReplaces(t *testing.T) {
	current := User{ID: 1, Name: "Ada", Email: "ada@example.com", Birthdate: "10-12-1915", AddressID: 7}

	draft := Merge(current, Input{Name: Some(""), Params: 1})
	assert.Equal(t, "", draft.Name)

	_, err := draft.Build()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDraftBuild(t *testing.T) {
	valid := Draft{Name: "Ada", Email: "Ada@Example.COM", Birthdate: "10-12-1915", AddressID: "7"}

	tests := []struct {
		name   string
		mutate func(d *Draft)
		want   error
	}{
		{"missing name", func(d *Draft) { d.Name = "" }, ErrInvalidInput},
		{"missing email", func(d *Draft) { d.Email = "" }, ErrInvalidInput},
		{"missing birthdate", func(d *Draft) { d.Birthdate = "" }, ErrInvalidInput},
		{"missing address", func(d *Draft) { d.AddressID = "" }, ErrInvalidInput},
		{"non-integer address", func(d *Draft) { d.AddressID = "home" }, ErrInvalidInput},
		{"bad email", func(d *Draft) { d.Email = "ada@example" }, ErrInvalidEmail},
		{"bad date", func(d *Draft) { d.Birthdate = "29-02-2016" }, ErrInvalidDate},
		{"bad email wins over bad date", func(d *Draft) { d.Email = "nope"; d.Birthdate = "nope" }, ErrInvalidEmail},
		{"missing wins over bad email", func(d *Draft) { d.Name = ""; d.Email = "nope" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			_, err := d.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}

	user, err := valid.Build()
	require.NoError(t, err)
	assert.Equal(t, User{Name: "Ada", Email: "ada@example.com", Birthdate: "10-12-1915", AddressID: 7}, user)
}

func TestNewDraft_AbsentFieldsAreEmpty(t *testing.T) {
	draft := NewDraft(Input{Name: Some("Ada"), Params: 1})
	assert.Equal(t, Draft{Name: "Ada"}, draft)
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profranchising/internal/apperr"
)

type refInput struct {
	Name     string  `json:"name" validate:"notblank"`
	Quantity float64 `json:"quantity" validate:"gte=0.01"`
}

type productInput struct {
	Name        string     `json:"name" validate:"notblank,max=255"`
	Unity       string     `json:"unity" validate:"unity"`
	Price       float64    `json:"price" validate:"gte=0.01"`
	Quantity    int        `json:"quantity" validate:"min=1,max=2147483647"`
	Role        string     `json:"role" validate:"oneof=admin user"`
	Username    string     `json:"username" validate:"min=2"`
	Password    string     `json:"password" validate:"omitempty,min=6,max=72"`
	Ingredients []refInput `json:"ingredients" validate:"min=1,dive"`
}

var productSchema = Schema{
	{Name: "name", Kind: String},
	{Name: "unity", Kind: String},
	{Name: "price", Kind: Number},
	{Name: "quantity", Kind: Integer},
	{Name: "role", Kind: String},
	{Name: "username", Kind: String},
	{Name: "password", Kind: String, Optional: true},
	{Name: "ingredients", Kind: Array, Items: Schema{
		{Name: "name", Kind: String},
		{Name: "quantity", Kind: Number},
	}},
}

const validBody = `{"name":"Coffee Cup","unity":"kg","price":15,"quantity":5,"role":"admin","username":"gui",
	"ingredients":[{"name":"Coffee","quantity":0.25}]}`

func TestDecodeValid(t *testing.T) {
	var in productInput
	require.NoError(t, Decode([]byte(validBody), productSchema, &in))

	assert.Equal(t, "Coffee Cup", in.Name)
	assert.Equal(t, 5, in.Quantity)
	require.Len(t, in.Ingredients, 1)
	assert.InDelta(t, 0.25, in.Ingredients[0].Quantity, 1e-9)
}

func TestDecodeMessages(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"missing price": {
			body: `{"name":"x","unity":"kg","quantity":1,"role":"admin","username":"gui","ingredients":[]}`,
			want: `"price" is required`,
		},
		"null name": {
			body: `{"name":null}`,
			want: `"name" is required`,
		},
		"name not string": {
			body: `{"name":1}`,
			want: `"name" must be a string`,
		},
		"price as string": {
			body: `{"name":"x","unity":"kg","price":"15"}`,
			want: `"price" must be a number`,
		},
		"fractional quantity": {
			body: `{"name":"x","unity":"kg","price":15,"quantity":1.5}`,
			want: `"quantity" must be an integer`,
		},
		"ingredients not array": {
			body: `{"name":"x","unity":"kg","price":15,"quantity":1,"role":"admin","username":"gui","ingredients":"Coffee"}`,
			want: `"ingredients" must be an array`,
		},
		"nested missing": {
			body: `{"name":"x","unity":"kg","price":15,"quantity":1,"role":"admin","username":"gui","ingredients":[{"name":"Coffee"}]}`,
			want: `"ingredients[0].quantity" is required`,
		},
		"empty name": {
			body: `{"name":"","unity":"kg","price":15,"quantity":1,"role":"admin","username":"gui","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"name" is not allowed to be empty`,
		},
		"bad unity": {
			body: `{"name":"x","unity":"g","price":15,"quantity":1,"role":"admin","username":"gui","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"unity" must be filled with "kg"(kilograms), "l"(liter) or "un"(unity)`,
		},
		"zero price": {
			body: `{"name":"x","unity":"kg","price":0,"quantity":1,"role":"admin","username":"gui","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"price" must be greater than or equal to 0.01`,
		},
		"zero yield": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":0,"role":"admin","username":"gui","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"quantity" must be greater than or equal to 1`,
		},
		"bad role": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"root","username":"gui","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"role" must be one of [admin, user]`,
		},
		"short username": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"user","username":"g","ingredients":[{"name":"Coffee","quantity":1}]}`,
			want: `"username" length must be at least 2 characters long`,
		},
		"no ingredients": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"user","username":"gui","ingredients":[]}`,
			want: `"ingredients" must contain at least 1 items`,
		},
		"negative reference quantity": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"user","username":"gui","ingredients":[{"name":"Milk","quantity":-1}]}`,
			want: `"ingredients[0].quantity" must be greater than or equal to 0.01`,
		},
		"zero reference quantity": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"user","username":"gui","ingredients":[{"name":"Milk","quantity":0}]}`,
			want: `"ingredients[0].quantity" must be greater than or equal to 0.01`,
		},
		"quantity beyond int4": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":3000000000,"role":"user","username":"gui","ingredients":[{"name":"Milk","quantity":1}]}`,
			want: `"quantity" must be less than or equal to 2147483647`,
		},
		"name too long": {
			body: `{"name":"` + strings.Repeat("n", 256) + `","unity":"kg","price":1,"quantity":1,"role":"user","username":"gui","ingredients":[{"name":"Milk","quantity":1}]}`,
			want: `"name" length must be less than or equal to 255 characters long`,
		},
		"password too long for bcrypt": {
			body: `{"name":"x","unity":"kg","price":1,"quantity":1,"role":"user","username":"gui","password":"` + strings.Repeat("a", 80) + `","ingredients":[{"name":"Milk","quantity":1}]}`,
			want: `"password" length must be less than or equal to 72 characters long`,
		},
		"not an object": {
			body: `[1,2]`,
			want: `"value" must be of type object`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var in productInput
			err := Decode([]byte(tc.body), productSchema, &in)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
			assert.Equal(t, tc.want, apperr.PublicMessage(err))
		})
	}
}

func TestOptionalField(t *testing.T) {
	schema := Schema{{Name: "image", Kind: String, Optional: true}}
	var in struct {
		Image string `json:"image"`
	}
	require.NoError(t, Decode([]byte(`{}`), schema, &in))
}

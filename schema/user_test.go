package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPath(t *testing.T) {
	if p := UserPath(""); p != "user" {
		t.Errorf("Unexpected path for the authenticated user [%s]", p)
	}
	if p := UserPath("42"); p != "users/42" {
		t.Errorf("Unexpected path [%s]", p)
	}
	if p := UserPath(UserID(493)); p != "users/493" {
		t.Errorf("Unexpected path [%s]", p)
	}
}

func TestUserUpdate_HasUpdates(t *testing.T) {
	upd := UserUpdate{}
	assert.False(t, upd.HasUpdates())

	upd.Hireable = BoolP(false)
	assert.True(t, upd.HasUpdates())
}

func TestUserUpdate_OnlySetFieldsAreEncoded(t *testing.T) {
	body, err := json.Marshal(UserUpdate{Name: StringP("A"), Hireable: BoolP(false)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","hireable":false}`, string(body))
}

func TestAccessToken_Token(t *testing.T) {
	var nilToken *AccessToken
	assert.Nil(t, nilToken.Token())

	tkn := (&AccessToken{AccessToken: "abc", Scope: "user"}).Token()
	assert.Equal(t, "abc", tkn.AccessToken)
	assert.Equal(t, "Bearer", tkn.TokenType)
	assert.Equal(t, "user", tkn.Extra("scope"))
	assert.True(t, tkn.Valid())
}

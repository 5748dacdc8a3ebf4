// Package guesttoken issues the bearer tokens that let guests without an
// account look up and cancel their reservation.
//
// Only the keyed hash is persisted. The hash is deterministic so the
// reservation can be found by equality lookup on an indexed column.
package guesttoken

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"dinner-club/internal/pkg/errs"
)

const tokenBytes = 32

var ErrTokenGeneration = errs.New("guest token generation failed")

type Token struct {
	Plain string
	Hash  string
}

type Issuer struct {
	secret []byte
	random io.Reader
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), random: rand.Reader}
}

func (i *Issuer) Issue() (Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(i.random, buf); err != nil {
		return Token{}, errs.Mark(err, ErrTokenGeneration)
	}
	plain := hex.EncodeToString(buf)
	return Token{Plain: plain, Hash: i.Hash(plain)}, nil
}

func (i *Issuer) Hash(plain string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(strings.ToLower(strings.TrimSpace(plain))))
	return hex.EncodeToString(mac.Sum(nil))
}

// WellFormed reports whether s could have been produced by Issue.
func WellFormed(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != tokenBytes*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the notes-board backend:
// account registration and login, bearer token handling, note storage and
// the live feed of new notes.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -mock_names=AuthService=MockAccountService

import (
	"context"

	"github.com/MKhiriev/notes-board/models"
)

type AuthService interface {
	// SignUp registers a new password account and returns its identity.
	SignUp(ctx context.Context, credentials models.Credentials) (models.Identity, error)
	// Login checks credentials and returns the matching account.
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// FindAccount returns the account a token subject refers to.
	FindAccount(ctx context.Context, uid string) (models.Account, error)
}

type NoteService interface {
	// AppendNote stores text as a note by account and publishes it to every
	// live feed.
	AppendNote(ctx context.Context, account models.Account, text string) (models.Note, error)
	// RecentNotes returns up to limit newest notes, oldest first.
	RecentNotes(ctx context.Context, limit int) ([]models.Note, error)
	// Feed calls send with the limit most recent notes in ascending key
	// order and then with every note appended afterwards, until ctx is done
	// or send fails. No note is sent twice.
	Feed(ctx context.Context, limit int, send func(models.Note) error) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

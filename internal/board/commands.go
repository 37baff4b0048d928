package board

import (
	"context"

	"github.com/MKhiriev/notes-board/models"
)

// LoginFailedMessage is shown when a sign-in attempt is rejected.
const LoginFailedMessage = "Login Failed!"

// PostNote appends the form's note as the signed-in user. Without a user the
// note is dropped.
func (s *Session) PostNote(form Form) {
	text := form.Get(FormNote)

	s.loop.Post(func() {
		user := s.model.User()
		if user == nil {
			s.logger.Debug().Msg("note dropped: not signed in")
			return
		}

		note := models.Note{UID: user.UID, Author: user.DisplayName, Text: text}
		s.goCall(func(ctx context.Context) {
			if err := s.store.Append(ctx, note); err != nil {
				s.logger.Err(err).Str("uid", note.UID).Msg("posting note failed")
			}
		})
	})
}

// LoginUser signs in with the form's email and password. A successful sign-in
// reaches the model through the auth-state subscription.
func (s *Session) LoginUser(form Form) {
	email, password := form.Get(FormEmail), form.Get(FormPassword)

	s.goCall(func(ctx context.Context) {
		s.signIn(ctx, email, password)
	})
}

// LogoutUser signs the user out. The model is cleared by the auth-state
// subscription.
func (s *Session) LogoutUser() {
	s.goCall(func(ctx context.Context) {
		if err := s.auth.SignOut(ctx); err != nil {
			s.logger.Err(err).Msg("sign out failed")
		}
	})
}

// SignUpUser creates an account and then signs in with the same credentials.
func (s *Session) SignUpUser(form Form) {
	email, password := form.Get(FormEmail), form.Get(FormPassword)

	s.goCall(func(ctx context.Context) {
		if err := s.auth.SignUp(ctx, email, password); err != nil {
			s.logger.Err(err).Str("email", email).Msg("sign up failed")
			return
		}

		s.signIn(ctx, email, password)
	})
}

func (s *Session) signIn(ctx context.Context, email, password string) {
	err := s.auth.SignIn(ctx, email, password)
	if err == nil {
		return
	}

	s.logger.Warn().Err(err).Str("email", email).Msg("sign in failed")
	s.loop.Post(func() {
		s.presenter.Alert(LoginFailedMessage)
		s.SetModel(FieldUser, nil)
	})
}

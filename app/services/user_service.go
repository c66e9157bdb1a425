package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zee467/twitter-clone/app/media"
	"github.com/zee467/twitter-clone/app/models"
	"github.com/zee467/twitter-clone/app/repo"
)

var (
	ErrUsernameTaken      = errors.New("username is taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// dummyHash keeps the missing-user login path as expensive as the real one.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("twclone-dummy"), bcrypt.DefaultCost)

type UserService struct {
	users    *repo.UserRepository
	uploader media.Uploader
	log      zerolog.Logger
}

func NewUserService(users *repo.UserRepository, uploader media.Uploader, log zerolog.Logger) *UserService {
	return &UserService{users: users, uploader: uploader, log: log}
}

// Register creates the account. A failed image upload degrades to an
// imageless account instead of losing the signup.
func (s *UserService) Register(ctx context.Context, name, username, password string, image *multipart.FileHeader) (*models.User, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	imageURL := ""
	if image != nil {
		imageURL, err = s.uploadImage(ctx, image)
		if err != nil {
			s.log.Error().Err(err).Str("username", username).Str("file", image.Filename).Msg("profile image upload failed")
			imageURL = ""
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{Name: name, Username: username, Image: imageURL, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		// Two registrations can race past the count check; the unique index
		// settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	f, err := image.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	contentType := image.Header.Get("Content-Type")
	return s.uploader.Upload(ctx, image.Filename, contentType, f)
}

// ValidateCredentials returns ErrInvalidCredentials for both an unknown
// username and a wrong password.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

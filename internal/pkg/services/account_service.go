package services

import (
	"context"
	"strings"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/store"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	usersRepo UsersRepo
	signer    TokenSigner
}

func NewAccountService(usersRepo UsersRepo, signer TokenSigner) *AccountService {
	return &AccountService{
		usersRepo: usersRepo,
		signer:    signer,
	}
}

// Signup creates the identity record and the profile document. A duplicate
// email creates nothing and reports ErrorDuplicateEmail.
func (s *AccountService) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := s.usersRepo.EmailExists(email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", consts.ErrorDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	uid, err := s.usersRepo.CreateUser(email, string(hash), strings.TrimSpace(req.Mobile))
	if err != nil {
		// The unique index closes the race between the pre-check and the
		// insert.
		if store.IsDuplicateKey(err) {
			return "", consts.ErrorDuplicateEmail
		}
		return "", err
	}

	logger.Info(ctx, "User registered uid=%s", uid)
	return uid, nil
}

// Login verifies the password and issues a bearer token carrying uid and
// role.
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (string, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	credential, err := s.usersRepo.CredentialByEmail(email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", "", consts.ErrorInvalidCredentials
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)) != nil {
		return "", "", consts.ErrorInvalidCredentials
	}

	token, err := s.signer.Sign(credential.UID.Hex(), credential.Role)
	if err != nil {
		return "", "", err
	}

	return token, credential.UID.Hex(), nil
}
